package repositories

import (
	"errors"

	"plot-sales-backend/db/models"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	CreateProperty(property *models.Property) error
	GetAllProperties() ([]models.Property, error)
	GetPropertyByName(name string) (*models.Property, error)
	CountProperties() (int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) CreateProperty(property *models.Property) error {
	return r.db.Create(property).Error
}

func (r *propertyRepository) GetAllProperties() ([]models.Property, error) {
	var properties []models.Property
	err := r.db.
		Preload("PaymentPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at ASC").
		Order("name ASC").
		Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) GetPropertyByName(name string) (*models.Property, error) {
	var property models.Property
	err := r.db.
		Preload("PaymentPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("name = ?", name).
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) CountProperties() (int64, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Count(&count).Error
	return count, err
}
