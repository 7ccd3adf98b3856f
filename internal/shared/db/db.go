package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct{ DB *gorm.DB }

// Open connects to postgres with exponential backoff, so the service
// survives the database coming up after it in compose environments.
func Open(dsn string) (*Store, error) {
	var last error
	for i := 0; i < 8; i++ {
		g, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, err := g.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(40)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			return &Store{DB: g}, nil
		}
		last = err
		log.Printf("db open attempt %d failed: %v", i+1, err)
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	return nil, fmt.Errorf("db open failed: %w", last)
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
