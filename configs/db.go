package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quickbite/entity"
)

// ConnectDB opens the relational store and returns the handle. No package
// level singleton — callers pass the *gorm.DB down explicitly.
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := SetupDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
	)
}
