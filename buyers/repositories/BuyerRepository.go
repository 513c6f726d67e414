package repositories

import (
	"errors"

	"plot-sales-backend/db/models"

	"gorm.io/gorm"
)

type BuyerRepository interface {
	GetAllBuyers() ([]models.Buyer, error)
	GetBuyerByID(id string) (*models.Buyer, error)
	BuyerExists(id string) (bool, error)
	CountBuyers() (int64, error)
}

type buyerRepository struct {
	db *gorm.DB
}

func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

// GetAllBuyers returns the register newest-first with the payment history
// preloaded in chronological order. Equal join dates fall back to id so the
// listing order is deterministic.
func (r *buyerRepository) GetAllBuyers() ([]models.Buyer, error) {
	var buyers []models.Buyer
	err := r.db.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Order("join_date DESC").
		Order("id ASC").
		Find(&buyers).Error
	return buyers, err
}

func (r *buyerRepository) GetBuyerByID(id string) (*models.Buyer, error) {
	var buyer models.Buyer
	err := r.db.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("id = ?", id).
		First(&buyer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &buyer, nil
}

// BuyerExists supports drill-down: a miss means fall back to the list view.
func (r *buyerRepository) BuyerExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Buyer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *buyerRepository) CountBuyers() (int64, error) {
	var count int64
	err := r.db.Model(&models.Buyer{}).Count(&count).Error
	return count, err
}
