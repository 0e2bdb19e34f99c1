package services_test

import (
	"testing"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/mailer"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// in-memory sqlite is per connection; keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Bike{},
		&entity.Application{},
		&entity.RentalHistory{},
		&entity.ActivityLog{},
		&entity.LeaderboardEntry{},
	))
	return db
}

func makeUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:     email,
		Password:  "irrelevant",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func makeBike(t *testing.T, db *gorm.DB, plate, status string) *entity.Bike {
	t.Helper()
	b := &entity.Bike{
		Name:   "Cruiser " + plate,
		Plate:  plate,
		Status: status,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func makeApplication(t *testing.T, db *gorm.DB, userID uint, status string) *entity.Application {
	t.Helper()
	a := &entity.Application{
		UserID:      userID,
		FirstName:   "Test",
		LastName:    "Applicant",
		Email:       "applicant@uni.edu",
		DocumentURL: "http://localhost/uploads/doc.pdf",
		Status:      status,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

// fakeMailer records sends on a channel so tests can wait for the
// best-effort goroutine.
type fakeMailer struct {
	assignments chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{assignments: make(chan string, 8)}
}

func (f *fakeMailer) SendAssignmentEmail(to, firstName, bikeName, bikePlate string) error {
	f.assignments <- to
	return nil
}

func (f *fakeMailer) SendPasswordResetEmail(to, resetURL string) error { return nil }

func newRentalService(db *gorm.DB, m mailer.Mailer) *services.RentalService {
	return services.NewRentalService(
		db,
		repository.NewApplicationRepository(db),
		repository.NewBikeRepository(db),
		repository.NewRentalHistoryRepository(db),
		repository.NewLeaderboardRepository(db),
		services.NewActivityService(repository.NewActivityRepository(db)),
		m,
	)
}

func newApplicationService(db *gorm.DB) *services.ApplicationService {
	return services.NewApplicationService(
		db,
		repository.NewApplicationRepository(db),
		services.NewActivityService(repository.NewActivityRepository(db)),
	)
}
