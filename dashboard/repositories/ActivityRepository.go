package repositories

import (
	"plot-sales-backend/db/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	RecordActivity(activity *models.Activity) error
	GetRecentActivities(limit int) ([]models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) RecordActivity(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) GetRecentActivities(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.
		Order("occurred_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
