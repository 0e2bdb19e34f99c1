package repository

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

type RentalHistoryRepository struct{ DB *gorm.DB }

func NewRentalHistoryRepository(db *gorm.DB) *RentalHistoryRepository {
	return &RentalHistoryRepository{DB: db}
}

// Create appends the snapshot inside the termination transaction.
func (r *RentalHistoryRepository) Create(tx *gorm.DB, h *entity.RentalHistory) error {
	return tx.Create(h).Error
}

func (r *RentalHistoryRepository) Search(q string, page, limit int) ([]entity.RentalHistory, int64, error) {
	var rows []entity.RentalHistory
	var total int64

	query := r.DB.Model(&entity.RentalHistory{})
	if q != "" {
		query = query.Where("user_email LIKE ?", "%"+q+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *RentalHistoryRepository) CountByApplication(appID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.RentalHistory{}).Where("application_id = ?", appID).Count(&count).Error
	return count, err
}
