package services_test

import (
	"testing"
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/mailer"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	t.Run("available bike onto approved application", func(t *testing.T) {
		db := setupDB(t)
		fm := newFakeMailer()
		svc := newRentalService(db, fm)
		admin := makeUser(t, db, "admin@uni.edu", "admin")
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)

		require.NoError(t, svc.Assign(app.ID, bike.ID, admin))

		var gotApp entity.Application
		require.NoError(t, db.First(&gotApp, app.ID).Error)
		assert.Equal(t, entity.StatusAssigned, gotApp.Status)
		require.NotNil(t, gotApp.BikeID)
		assert.Equal(t, bike.ID, *gotApp.BikeID)
		require.NotNil(t, gotApp.AssignedAt)

		var gotBike entity.Bike
		require.NoError(t, db.First(&gotBike, bike.ID).Error)
		assert.Equal(t, entity.BikeRented, gotBike.Status)

		// best-effort email went out to the applicant
		select {
		case to := <-fm.assignments:
			assert.Equal(t, app.Email, to)
		case <-time.After(2 * time.Second):
			t.Fatal("assignment email never sent")
		}
	})

	t.Run("refused when application is not approved", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)

		for _, status := range []string{entity.StatusPending, entity.StatusRejected, entity.StatusCompleted} {
			app := makeApplication(t, db, user.ID, status)
			err := svc.Assign(app.ID, bike.ID, nil)
			require.ErrorIs(t, err, services.ErrNotAssignable, "status %s", status)
			require.NoError(t, db.Unscoped().Delete(app).Error)
		}

		var gotBike entity.Bike
		require.NoError(t, db.First(&gotBike, bike.ID).Error)
		assert.Equal(t, entity.BikeAvailable, gotBike.Status)
	})

	t.Run("refused when application already holds a bike", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		held := makeBike(t, db, "BK-1001", entity.BikeRented)
		spare := makeBike(t, db, "BK-1002", entity.BikeAvailable)

		app := makeApplication(t, db, user.ID, entity.StatusAssigned)
		require.NoError(t, db.Model(app).Update("bike_id", held.ID).Error)

		err := svc.Assign(app.ID, spare.ID, nil)
		require.ErrorIs(t, err, services.ErrBikeHeld)
	})

	t.Run("refused when bike is rented", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeRented)

		err := svc.Assign(app.ID, bike.ID, nil)
		require.ErrorIs(t, err, services.ErrBikeTaken)

		var gotApp entity.Application
		require.NoError(t, db.First(&gotApp, app.ID).Error)
		assert.Equal(t, entity.StatusApproved, gotApp.Status)
		assert.Nil(t, gotApp.BikeID)
	})

	t.Run("two applications cannot take the same bike", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		u1 := makeUser(t, db, "a@uni.edu", "student")
		u2 := makeUser(t, db, "b@uni.edu", "student")
		a1 := makeApplication(t, db, u1.ID, entity.StatusApproved)
		a2 := makeApplication(t, db, u2.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)

		require.NoError(t, svc.Assign(a1.ID, bike.ID, nil))
		require.ErrorIs(t, svc.Assign(a2.ID, bike.ID, nil), services.ErrBikeTaken)
	})
}

func TestTerminate(t *testing.T) {
	t.Run("writes one history row and frees the bike", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)
		require.NoError(t, svc.Assign(app.ID, bike.ID, nil))

		require.NoError(t, svc.Terminate(app.ID, nil))

		var gotApp entity.Application
		require.NoError(t, db.First(&gotApp, app.ID).Error)
		assert.Equal(t, entity.StatusCompleted, gotApp.Status)
		assert.Nil(t, gotApp.BikeID)

		var gotBike entity.Bike
		require.NoError(t, db.First(&gotBike, bike.ID).Error)
		assert.Equal(t, entity.BikeAvailable, gotBike.Status)

		var rows []entity.RentalHistory
		require.NoError(t, db.Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, app.ID, rows[0].ApplicationID)
		assert.Equal(t, user.ID, rows[0].UserID)
		assert.Equal(t, bike.ID, rows[0].BikeID)
		assert.Equal(t, "BK-1001", rows[0].BikePlate)
		assert.False(t, rows[0].EndDate.Before(rows[0].StartDate))
	})

	t.Run("second terminate fails and adds no history", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)
		require.NoError(t, svc.Assign(app.ID, bike.ID, nil))

		require.NoError(t, svc.Terminate(app.ID, nil))
		require.ErrorIs(t, svc.Terminate(app.ID, nil), services.ErrNoActiveRental)

		count, err := repository.NewRentalHistoryRepository(db).CountByApplication(app.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("gives the rider a leaderboard entry", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)
		require.NoError(t, svc.Assign(app.ID, bike.ID, nil))

		require.NoError(t, svc.Terminate(app.ID, nil))

		entry, err := repository.NewLeaderboardRepository(db).FindByUser(user.ID)
		require.NoError(t, err)
		assert.Zero(t, entry.DistanceKm)
		assert.Zero(t, entry.CO2SavedKg)
	})

	t.Run("keeps existing leaderboard totals", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		board := repository.NewLeaderboardRepository(db)
		user := makeUser(t, db, "student@uni.edu", "student")
		require.NoError(t, board.Accrue(user.ID, 12.5, 2.6))

		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)
		require.NoError(t, svc.Assign(app.ID, bike.ID, nil))
		require.NoError(t, svc.Terminate(app.ID, nil))

		entry, err := board.FindByUser(user.ID)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, entry.DistanceKm, 0.001)
		assert.InDelta(t, 2.6, entry.CO2SavedKg, 0.001)
	})

	t.Run("terminate without an assignment fails", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)

		require.ErrorIs(t, svc.Terminate(app.ID, nil), services.ErrNoActiveRental)
	})

	t.Run("by bike id", func(t *testing.T) {
		db := setupDB(t)
		svc := newRentalService(db, mailer.Noop{})
		user := makeUser(t, db, "student@uni.edu", "student")
		app := makeApplication(t, db, user.ID, entity.StatusApproved)
		bike := makeBike(t, db, "BK-1001", entity.BikeAvailable)
		require.NoError(t, svc.Assign(app.ID, bike.ID, nil))

		require.NoError(t, svc.TerminateByBike(bike.ID, nil))

		var gotApp entity.Application
		require.NoError(t, db.First(&gotApp, app.ID).Error)
		assert.Equal(t, entity.StatusCompleted, gotApp.Status)
	})
}
