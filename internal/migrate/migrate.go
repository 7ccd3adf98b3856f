package migrate

import (
	"food-service/internal/comment"
	"food-service/internal/food"
	"food-service/internal/user"

	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&food.Food{},
		&comment.Comment{},
		&user.User{},
	)
}
