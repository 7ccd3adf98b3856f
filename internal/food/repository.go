package food

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(f *Food) error
	GetAll() ([]Food, error)
	GetByID(id uint64) (*Food, error)
}

type repo struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository { return &repo{db: db} }

func (r *repo) Create(f *Food) error {
	return r.db.Create(f).Error
}

func (r *repo) GetAll() ([]Food, error) {
	out := []Food{}
	err := r.db.Find(&out).Error
	return out, err
}

func (r *repo) GetByID(id uint64) (*Food, error) {
	var f Food
	err := r.db.First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
