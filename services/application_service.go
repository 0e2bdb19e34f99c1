package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrDuplicateApplication = errors.New("user already has an active application")
	ErrStatusLocked         = errors.New("application can no longer be reviewed")
	ErrInvalidStatus        = errors.New("invalid target status")
)

type ApplicationService struct {
	DB       *gorm.DB
	Repo     *repository.ApplicationRepository
	Activity *ActivityService
}

func NewApplicationService(db *gorm.DB, repo *repository.ApplicationRepository, activity *ActivityService) *ApplicationService {
	return &ApplicationService{DB: db, Repo: repo, Activity: activity}
}

// Submit files a new application in pending state. One live application
// per user: a second submission while one is pending/approved/assigned/
// active is refused and writes nothing.
func (s *ApplicationService) Submit(app *entity.Application) (uint, error) {
	live, err := s.Repo.CountLiveByUser(app.UserID)
	if err != nil {
		return 0, err
	}
	if live > 0 {
		return 0, ErrDuplicateApplication
	}

	app.Status = entity.StatusPending
	app.BikeID = nil
	if err := s.Repo.Create(app); err != nil {
		return 0, err
	}
	return app.ID, nil
}

func (s *ApplicationService) ListMine(userID uint, status string) ([]entity.Application, error) {
	return s.Repo.FindByUser(userID, status)
}

func (s *ApplicationService) Get(id uint) (*entity.Application, error) {
	return s.Repo.FindByID(id)
}

func (s *ApplicationService) Search(status, q string, page, limit int) ([]entity.Application, int64, error) {
	return s.Repo.Search(status, q, page, limit)
}

// UpdateStatus is the admin review action: pending/approved/rejected only.
// Applications that hold a bike or are completed are immutable here; the
// guard update closes the two-admins race.
func (s *ApplicationService) UpdateStatus(appID uint, to string, reason string, admin *entity.User) error {
	if !entity.IsReviewTarget(to) {
		return ErrInvalidStatus
	}

	app, err := s.Repo.FindByID(appID)
	if err != nil {
		return err
	}
	if !entity.IsReviewable(app.Status) {
		return ErrStatusLocked
	}

	var adminID *uint
	if admin != nil {
		adminID = &admin.ID
	}
	now := time.Now()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, appID, entity.ReviewableStatuses, to, adminID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusLocked
		}
		if to == entity.StatusRejected && reason != "" {
			return s.Repo.SetRejectReason(tx, appID, reason)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Activity.Log("application_status", admin,
		fmt.Sprintf("application #%d set to %s for %s", appID, to, app.Email))
	return nil
}
