package configs

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quickbite/entity"
	"quickbite/services"
)

// SeedAdmin สร้าง admin user ถ้ายังไม่มี
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash admin password failed")
	}

	admin := entity.User{
		Email:        cfg.AdminEmail,
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
		IsActive:     true,
	}
	return db.Create(&admin).Error
}

// SeedRestaurants สร้างร้านตั้งต้น — catalog key ถูกกำหนดครั้งเดียวตอนสร้าง
func SeedRestaurants(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []entity.Restaurant{
		{
			Name:        "Pizza Palace",
			Description: "Authentic Italian pizza",
			City:        "Astana",
			Address:     "12 Mangilik El Ave",
			Phone:       "+7 700 000 0001",
		},
		{
			Name:        "Burger Haven",
			Description: "Gourmet burgers and fries",
			City:        "Astana",
			Address:     "4 Turan Ave",
			Phone:       "+7 700 000 0002",
		},
		{
			Name:        "Sushi Spot",
			Description: "Fresh sushi and rolls",
			City:        "Almaty",
			Address:     "88 Abay Ave",
			Phone:       "+7 700 000 0003",
		},
	}
	for i := range seed {
		seed[i].CatalogKey = services.DeriveCatalogKey(seed[i].Name)
	}
	return db.Create(&seed).Error
}
