package repository

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

type ActivityRepository struct{ DB *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(logEntry *entity.ActivityLog) error {
	return r.DB.Create(logEntry).Error
}

func (r *ActivityRepository) List(page, limit int) ([]entity.ActivityLog, int64, error) {
	var rows []entity.ActivityLog
	var total int64

	if err := r.DB.Model(&entity.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}
