package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrSelfDelete = errors.New("cannot delete your own account")

// UserService is the admin side of account management; self-service lives
// in AuthService.
type UserService struct {
	Repo     *repository.UserRepository
	Activity *ActivityService
}

func NewUserService(repo *repository.UserRepository, activity *ActivityService) *UserService {
	return &UserService{Repo: repo, Activity: activity}
}

func (s *UserService) Search(q string, page, limit int) ([]entity.User, int64, error) {
	return s.Repo.Search(q, page, limit)
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	return s.Repo.FindByID(id)
}

func (s *UserService) Create(email, password, firstName, lastName, role string, admin *entity.User) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	count, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}
	if role == "" {
		role = "student"
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      role,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	s.Activity.Log("user_create", admin, fmt.Sprintf("user %s created with role %s", email, role))
	return user, nil
}

func (s *UserService) Update(id uint, updates map[string]any, admin *entity.User) (*entity.User, error) {
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.Activity.Log("user_update", admin, fmt.Sprintf("user %s edited", u.Email))
	return u, nil
}

func (s *UserService) Delete(id uint, admin *entity.User) error {
	if admin != nil && admin.ID == id {
		return ErrSelfDelete
	}
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Activity.Log("user_delete", admin, fmt.Sprintf("user %s deleted", u.Email))
	return nil
}
