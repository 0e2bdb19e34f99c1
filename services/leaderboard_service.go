package services

import (
	"errors"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
)

// Average car emission displaced per km ridden.
const co2KgPerKm = 0.21

var ErrInvalidDistance = errors.New("distance must be positive")

type LeaderboardService struct {
	Repo *repository.LeaderboardRepository
}

func NewLeaderboardService(repo *repository.LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{Repo: repo}
}

// RecordRide accrues a ride onto the user's totals.
func (s *LeaderboardService) RecordRide(userID uint, distanceKm float64) error {
	if distanceKm <= 0 {
		return ErrInvalidDistance
	}
	return s.Repo.Accrue(userID, distanceKm, distanceKm*co2KgPerKm)
}

func (s *LeaderboardService) Top(limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.Repo.Top(limit)
}

func (s *LeaderboardService) ForUser(userID uint) (*entity.LeaderboardEntry, error) {
	return s.Repo.FindByUser(userID)
}
