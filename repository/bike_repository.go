package repository

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

type BikeRepository struct{ DB *gorm.DB }

func NewBikeRepository(db *gorm.DB) *BikeRepository {
	return &BikeRepository{DB: db}
}

func (r *BikeRepository) Create(b *entity.Bike) error {
	return r.DB.Create(b).Error
}

func (r *BikeRepository) FindByID(id uint) (*entity.Bike, error) {
	var b entity.Bike
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BikeRepository) FindAvailable() ([]entity.Bike, error) {
	var bikes []entity.Bike
	err := r.DB.Where("status = ?", entity.BikeAvailable).Order("plate").Find(&bikes).Error
	return bikes, err
}

// Search filters by status and plate substring with page/limit.
func (r *BikeRepository) Search(status, plate string, page, limit int) ([]entity.Bike, int64, error) {
	var bikes []entity.Bike
	var total int64

	query := r.DB.Model(&entity.Bike{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if plate != "" {
		query = query.Where("plate LIKE ?", "%"+plate+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bikes).Error
	return bikes, total, err
}

func (r *BikeRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Bike{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BikeRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Bike{}, id).Error
}

// UpdateStatusGuard flips the bike status only from the expected one,
// so two admins cannot hand out the same bike.
func (r *BikeRepository) UpdateStatusGuard(tx *gorm.DB, bikeID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Bike{}).
		Where("id = ? AND status = ?", bikeID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
