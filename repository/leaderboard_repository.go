package repository

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

type LeaderboardRepository struct{ DB *gorm.DB }

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

// Accrue adds the ride to the user's running totals, creating the entry
// on first ride.
func (r *LeaderboardRepository) Accrue(userID uint, distanceKm, co2Kg float64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var entry entity.LeaderboardEntry
		if err := tx.Where(entity.LeaderboardEntry{UserID: userID}).
			FirstOrCreate(&entry).Error; err != nil {
			return err
		}
		return tx.Model(&entity.LeaderboardEntry{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"distance_km":  gorm.Expr("distance_km + ?", distanceKm),
				"co2_saved_kg": gorm.Expr("co2_saved_kg + ?", co2Kg),
			}).Error
	})
}

func (r *LeaderboardRepository) Top(limit int) ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	err := r.DB.Preload("User").
		Order("distance_km DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *LeaderboardRepository) FindByUser(userID uint) (*entity.LeaderboardEntry, error) {
	var entry entity.LeaderboardEntry
	if err := r.DB.Where("user_id = ?", userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
