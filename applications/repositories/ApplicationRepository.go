package repositories

import (
	"plot-sales-backend/db/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	GetAllApplications() ([]models.Application, error)
	CountApplicationsByStatus(status models.ApplicationStatus) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// GetAllApplications returns the full applications register in display order:
// newest applied date first, id as tiebreak. Filtering happens in-memory on
// this snapshot so derived views always observe a fully-formed collection.
func (r *applicationRepository) GetAllApplications() ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.
		Order("applied_date DESC").
		Order("id ASC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) CountApplicationsByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
