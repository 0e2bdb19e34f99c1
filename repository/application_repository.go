package repository

import (
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

type ApplicationRepository struct{ DB *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *entity.Application) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.
		Preload("User").
		Preload("Bike").
		First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByUser lists a user's own applications, optionally filtered by status.
func (r *ApplicationRepository) FindByUser(userID uint, status string) ([]entity.Application, error) {
	var apps []entity.Application
	q := r.DB.Preload("Bike").Where("user_id = ?", userID).Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&apps).Error
	return apps, err
}

// CountLiveByUser counts the user's applications still in a live status
// (anything the duplicate-submission rule blocks on).
func (r *ApplicationRepository) CountLiveByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Application{}).
		Where("user_id = ?", userID).
		Where("status IN ?", entity.LiveStatuses).
		Count(&count).Error
	return count, err
}

// Search is the admin list: status filter, name/email substring, newest first.
func (r *ApplicationRepository) Search(status, q string, page, limit int) ([]entity.Application, int64, error) {
	var apps []entity.Application
	var total int64

	query := r.DB.Model(&entity.Application{}).Preload("User").Preload("Bike")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

// UpdateStatusGuard moves the application between review statuses only if
// the current status still allows it. 0 rows affected means a lost race or
// a locked application.
func (r *ApplicationRepository) UpdateStatusGuard(tx *gorm.DB, appID uint, from []string, to string, adminID *uint, now time.Time) (int64, error) {
	res := tx.Model(&entity.Application{}).
		Where("id = ? AND status IN ?", appID, from).
		Updates(map[string]any{
			"status":      to,
			"admin_id":    adminID,
			"reviewed_at": now,
		})
	return res.RowsAffected, res.Error
}

// AssignGuard attaches the bike only while the application is assignable
// and holds no bike yet.
func (r *ApplicationRepository) AssignGuard(tx *gorm.DB, appID, bikeID uint, now time.Time) (int64, error) {
	res := tx.Model(&entity.Application{}).
		Where("id = ? AND bike_id IS NULL AND status IN ?", appID, entity.AssignableStatuses).
		Updates(map[string]any{
			"status":      entity.StatusAssigned,
			"bike_id":     bikeID,
			"assigned_at": now,
		})
	return res.RowsAffected, res.Error
}

// CompleteGuard closes the rental: status completed, bike link cleared.
func (r *ApplicationRepository) CompleteGuard(tx *gorm.DB, appID uint) (int64, error) {
	res := tx.Model(&entity.Application{}).
		Where("id = ? AND bike_id IS NOT NULL AND status IN ?", appID, entity.TerminableStatuses).
		Updates(map[string]any{
			"status":  entity.StatusCompleted,
			"bike_id": nil,
		})
	return res.RowsAffected, res.Error
}

// SetRejectReason stores the reason alongside a rejected review.
func (r *ApplicationRepository) SetRejectReason(tx *gorm.DB, appID uint, reason string) error {
	return tx.Model(&entity.Application{}).
		Where("id = ?", appID).
		Update("reject_reason", reason).Error
}

// FindActiveByBike finds the live application currently holding the bike.
func (r *ApplicationRepository) FindActiveByBike(bikeID uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.
		Preload("User").
		Where("bike_id = ? AND status IN ?", bikeID, entity.TerminableStatuses).
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
