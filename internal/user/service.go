package user

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(name, password string) (*User, error)
	Login(name, password string) (*User, error)
	Authenticate(token string) (*User, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Register(name, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		Name:        name,
		Password:    string(hash),
		AccessToken: newAccessToken(),
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login returns (nil, nil) both for an unknown name and for a wrong
// password; the endpoint does not distinguish the two.
func (s *service) Login(name, password string) (*User, error) {
	u, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, nil
	}
	return u, nil
}

func (s *service) Authenticate(token string) (*User, error) {
	return s.repo.FindByToken(token)
}

// newAccessToken returns 128 random bytes hex encoded. Issued once at
// registration, never rotated.
func newAccessToken() string {
	b := make([]byte, 128)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
