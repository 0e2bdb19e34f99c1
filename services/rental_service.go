package services

import (
	"errors"

	"github.com/brianneil238/BikeRentalWebsite-sub000/mailer"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrNotAssignable  = errors.New("application is not assignable")
	ErrBikeHeld       = errors.New("application already has a bike")
	ErrBikeTaken      = errors.New("bike is not available")
	ErrNoActiveRental = errors.New("no active rental found")
)

// RentalService owns the assignment and termination transitions, the only
// writes that touch an application and a bike together.
type RentalService struct {
	DB       *gorm.DB
	Apps     *repository.ApplicationRepository
	Bikes    *repository.BikeRepository
	History  *repository.RentalHistoryRepository
	Board    *repository.LeaderboardRepository
	Activity *ActivityService
	Mailer   mailer.Mailer
}

func NewRentalService(
	db *gorm.DB,
	apps *repository.ApplicationRepository,
	bikes *repository.BikeRepository,
	history *repository.RentalHistoryRepository,
	board *repository.LeaderboardRepository,
	activity *ActivityService,
	m mailer.Mailer,
) *RentalService {
	return &RentalService{DB: db, Apps: apps, Bikes: bikes, History: history, Board: board, Activity: activity, Mailer: m}
}
