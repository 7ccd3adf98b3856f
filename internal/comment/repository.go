package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Comment) error
	Latest(limit int) ([]Comment, error)
	GetByID(id uint64) (*Comment, error)
	Like(id uint64) (*Comment, error)
}

type repo struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewRepository takes an optional redis client used as a best-effort mirror
// of the like counters; the database stays authoritative.
func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repo{db: db, rdb: rdb}
}

func likeKey(id uint64) string { return fmt.Sprintf("comments:likes:%d", id) }

func (r *repo) Create(c *Comment) error {
	return r.db.Create(c).Error
}

func (r *repo) Latest(limit int) ([]Comment, error) {
	out := []Comment{}
	// id breaks ties between comments sharing a timestamp
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// GetByID returns (nil, nil) when no comment matches; callers serialize that
// as a JSON null rather than a 404.
func (r *repo) GetByID(id uint64) (*Comment, error) {
	var c Comment
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Like increments the counter in a single UPDATE so concurrent likes never
// lose updates, then reloads the row.
func (r *repo) Like(id uint64) (*Comment, error) {
	res := r.db.Model(&Comment{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if r.rdb != nil {
		_ = r.rdb.Incr(context.Background(), likeKey(id)).Err()
	}
	var c Comment
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
