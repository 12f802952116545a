package repository

import (
	"strings"

	"gorm.io/gorm"

	"quickbite/entity"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

type RestaurantFilters struct {
	City         string
	NameContains string
}

func (r *RestaurantRepository) List(f RestaurantFilters) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.NameContains)+"%")
	}

	var out []entity.Restaurant
	err := q.Order("name").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Find(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Cities คืนรายชื่อเมือง (distinct) สำหรับ filter dropdown
func (r *RestaurantRepository) Cities() ([]string, error) {
	var cities []string
	err := r.DB.Model(&entity.Restaurant{}).
		Distinct("city").
		Where("city <> ''").
		Order("city").
		Pluck("city", &cities).Error
	return cities, err
}
