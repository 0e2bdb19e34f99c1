package repository

import (
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Search(q string, page, limit int) ([]entity.User, int64, error) {
	var users []entity.User
	var total int64

	query := r.DB.Model(&entity.User{})
	if q != "" {
		query = query.Where("email LIKE ?", "%"+q+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

func (r *UserRepository) SetResetToken(id uint, token string, expiry time.Time) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
}

func (r *UserRepository) FindByResetToken(token string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("reset_token = ?", token).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ResetPassword writes the new hash and burns the token in one update.
func (r *UserRepository) ResetPassword(id uint, hashed string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"password":           hashed,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}).Error
}
