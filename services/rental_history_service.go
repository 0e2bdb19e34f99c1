package services

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
)

type RentalHistoryService struct {
	Repo *repository.RentalHistoryRepository
}

func NewRentalHistoryService(repo *repository.RentalHistoryRepository) *RentalHistoryService {
	return &RentalHistoryService{Repo: repo}
}

func (s *RentalHistoryService) Search(q string, page, limit int) ([]entity.RentalHistory, int64, error) {
	return s.Repo.Search(q, page, limit)
}
