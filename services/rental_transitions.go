package services

import (
	"fmt"
	"log"
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"gorm.io/gorm"
)

// Assign links an available bike to an assignable application. Both flips
// run in one transaction behind guard updates; either guard losing its
// race aborts the whole thing. The applicant email afterwards is
// best-effort and never rolls anything back.
func (s *RentalService) Assign(appID, bikeID uint, admin *entity.User) error {
	app, err := s.Apps.FindByID(appID)
	if err != nil {
		return err
	}
	if app.BikeID != nil {
		return ErrBikeHeld
	}
	if !entity.IsAssignableStatus(app.Status) {
		return ErrNotAssignable
	}

	bike, err := s.Bikes.FindByID(bikeID)
	if err != nil {
		return err
	}
	if bike.Status != entity.BikeAvailable {
		return ErrBikeTaken
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Bikes.UpdateStatusGuard(tx, bikeID, entity.BikeAvailable, entity.BikeRented)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBikeTaken
		}

		affected, err = s.Apps.AssignGuard(tx, appID, bikeID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotAssignable
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Activity.Log("bike_assign", admin,
		fmt.Sprintf("bike %s assigned to application #%d (%s)", bike.Plate, appID, app.Email))

	go func() {
		if err := s.Mailer.SendAssignmentEmail(app.Email, app.FirstName, bike.Name, bike.Plate); err != nil {
			log.Println("assignment email failed:", err)
		}
	}()

	return nil
}

// Terminate ends the rental on an application: exactly one history row,
// application completed with the bike link cleared, bike back to available.
func (s *RentalService) Terminate(appID uint, admin *entity.User) error {
	app, err := s.Apps.FindByID(appID)
	if err != nil {
		return err
	}
	if app.BikeID == nil || !entity.IsTerminable(app.Status) {
		return ErrNoActiveRental
	}

	bikeID := *app.BikeID
	bike, err := s.Bikes.FindByID(bikeID)
	if err != nil {
		return err
	}

	start := app.CreatedAt
	if app.AssignedAt != nil {
		start = *app.AssignedAt
	}
	now := time.Now()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Apps.CompleteGuard(tx, appID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNoActiveRental
		}

		if _, err := s.Bikes.UpdateStatusGuard(tx, bikeID, entity.BikeRented, entity.BikeAvailable); err != nil {
			return err
		}

		return s.History.Create(tx, &entity.RentalHistory{
			ApplicationID: appID,
			UserID:        app.UserID,
			BikeID:        bikeID,
			BikePlate:     bike.Plate,
			UserEmail:     app.Email,
			StartDate:     start,
			EndDate:       now,
		})
	})
	if err != nil {
		return err
	}

	// Rides are self-reported, so the rental itself accrues no distance.
	// The zero accrual still makes sure the rider has a leaderboard row.
	if err := s.Board.Accrue(app.UserID, 0, 0); err != nil {
		log.Println("leaderboard upsert failed:", err)
	}

	s.Activity.Log("rental_end", admin,
		fmt.Sprintf("rental ended for application #%d, bike %s returned", appID, bike.Plate))
	return nil
}

// TerminateByBike resolves the live application holding the bike, then
// terminates it. Lets admins end a rental from the bike list.
func (s *RentalService) TerminateByBike(bikeID uint, admin *entity.User) error {
	app, err := s.Apps.FindActiveByBike(bikeID)
	if err != nil {
		return err
	}
	return s.Terminate(app.ID, admin)
}
