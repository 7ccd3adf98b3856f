package user

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) error
	FindByName(name string) (*User, error)
	FindByToken(token string) (*User, error)
}

type repo struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository { return &repo{db: db} }

func (r *repo) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repo) FindByName(name string) (*User, error) {
	return r.findOne("name = ?", name)
}

func (r *repo) FindByToken(token string) (*User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findOne("access_token = ?", token)
}

// findOne returns (nil, nil) on no match; errors are real store failures.
func (r *repo) findOne(query string, arg any) (*User, error) {
	var u User
	err := r.db.First(&u, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
