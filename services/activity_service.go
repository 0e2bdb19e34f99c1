package services

import (
	"log"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
)

type ActivityService struct {
	Repo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{Repo: repo}
}

// Log appends an audit row. Best-effort: a failed audit write must never
// fail the admin action it describes.
func (s *ActivityService) Log(actionType string, admin *entity.User, description string) {
	entry := entity.ActivityLog{
		Type:        actionType,
		Description: description,
	}
	if admin != nil {
		entry.AdminName = admin.FirstName + " " + admin.LastName
		entry.AdminEmail = admin.Email
	}
	if err := s.Repo.Create(&entry); err != nil {
		log.Println("activity log write failed:", err)
	}
}

func (s *ActivityService) List(page, limit int) ([]entity.ActivityLog, int64, error) {
	return s.Repo.List(page, limit)
}
