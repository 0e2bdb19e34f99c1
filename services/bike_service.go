package services

import (
	"errors"
	"fmt"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
)

var ErrBikeRented = errors.New("bike is currently rented")

type BikeService struct {
	Repo     *repository.BikeRepository
	Activity *ActivityService
}

func NewBikeService(repo *repository.BikeRepository, activity *ActivityService) *BikeService {
	return &BikeService{Repo: repo, Activity: activity}
}

func (s *BikeService) Create(b *entity.Bike, admin *entity.User) error {
	if b.Status == "" {
		b.Status = entity.BikeAvailable
	}
	if err := s.Repo.Create(b); err != nil {
		return err
	}
	s.Activity.Log("bike_create", admin, fmt.Sprintf("bike %s (%s) added", b.Name, b.Plate))
	return nil
}

func (s *BikeService) Get(id uint) (*entity.Bike, error) {
	return s.Repo.FindByID(id)
}

func (s *BikeService) ListAvailable() ([]entity.Bike, error) {
	return s.Repo.FindAvailable()
}

func (s *BikeService) Search(status, plate string, page, limit int) ([]entity.Bike, int64, error) {
	return s.Repo.Search(status, plate, page, limit)
}

func (s *BikeService) Update(id uint, updates map[string]any, admin *entity.User) (*entity.Bike, error) {
	// status flips go through assignment/termination, never a plain edit
	delete(updates, "status")

	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	b, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.Activity.Log("bike_update", admin, fmt.Sprintf("bike %s edited", b.Plate))
	return b, nil
}

// Delete removes a bike unless someone is riding it.
func (s *BikeService) Delete(id uint, admin *entity.User) error {
	b, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if b.Status == entity.BikeRented {
		return ErrBikeRented
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Activity.Log("bike_delete", admin, fmt.Sprintf("bike %s (%s) removed", b.Name, b.Plate))
	return nil
}
