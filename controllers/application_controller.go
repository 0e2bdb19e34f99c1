package controllers

import (
	"errors"
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/brianneil238/BikeRentalWebsite-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ApplicationController struct {
	Service *services.ApplicationService
	Rentals *services.RentalService
	Users   *repository.UserRepository
}

func NewApplicationController(s *services.ApplicationService, r *services.RentalService, users *repository.UserRepository) *ApplicationController {
	return &ApplicationController{Service: s, Rentals: r, Users: users}
}

// ===== Request DTOs =====
type ApplyRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`

	StudentNumber string `json:"studentNumber" binding:"required"`
	Program       string `json:"program" binding:"required"`
	YearLevel     string `json:"yearLevel"`

	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`

	DocumentURL string `json:"documentUrl" binding:"required,url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AssignRequest struct {
	BikeID uint `json:"bikeId" binding:"required"`
}

// ===== Response DTO =====
type applicationItem struct {
	ID            uint       `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	StudentNumber string     `json:"studentNumber"`
	Program       string     `json:"program"`
	Status        string     `json:"status"`
	BikeID        *uint      `json:"bikeId,omitempty"`
	BikePlate     string     `json:"bikePlate,omitempty"`
	DocumentURL   string     `json:"documentUrl"`
	SubmittedAt   string     `json:"submittedAt"`
	AssignedAt    *time.Time `json:"assignedAt,omitempty"`
	RejectReason  *string    `json:"rejectReason,omitempty"`
}

func toApplicationItem(a entity.Application) applicationItem {
	it := applicationItem{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Email:         a.Email,
		StudentNumber: a.StudentNumber,
		Program:       a.Program,
		Status:        a.Status,
		BikeID:        a.BikeID,
		DocumentURL:   a.DocumentURL,
		SubmittedAt:   a.CreatedAt.Format(time.RFC3339),
		AssignedAt:    a.AssignedAt,
		RejectReason:  a.RejectReason,
	}
	if a.Bike != nil {
		it.BikePlate = a.Bike.Plate
	}
	return it
}

// POST /api/applications: student files an application
func (ctl *ApplicationController) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app := entity.Application{
		UserID:        utils.CurrentUserID(c),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		StudentNumber: req.StudentNumber,
		Program:       req.Program,
		YearLevel:     req.YearLevel,
		AddressLine:   req.AddressLine,
		City:          req.City,
		Province:      req.Province,
		PostalCode:    req.PostalCode,
		DocumentURL:   req.DocumentURL,
	}

	id, err := ctl.Service.Submit(&app)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateApplication) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": id, "status": entity.StatusPending})
}

// GET /api/applications/me
func (ctl *ApplicationController) ListMine(c *gin.Context) {
	apps, err := ctl.Service.ListMine(utils.CurrentUserID(c), c.DefaultQuery("status", ""))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]applicationItem, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationItem(a))
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /api/admin/applications: ?status= &q= &page= &limit=
func (ctl *ApplicationController) List(c *gin.Context) {
	page, limit := parsePage(c)
	apps, total, err := ctl.Service.Search(c.DefaultQuery("status", ""), c.DefaultQuery("q", ""), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]applicationItem, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationItem(a))
	}
	resp.OK(c, gin.H{"items": out, "total": total, "page": page, "limit": limit})
}

// GET /api/admin/applications/:id
func (ctl *ApplicationController) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	app, err := ctl.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "application not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, app)
}

// PATCH /api/admin/applications/:id/status
func (ctl *ApplicationController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Service.UpdateStatus(id, req.Status, req.Reason, adminFrom(c, ctl.Users))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "application not found")
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrStatusLocked):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"applicationId": id, "status": req.Status})
}

// POST /api/admin/applications/:id/assign
func (ctl *ApplicationController) Assign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Rentals.Assign(id, req.BikeID, adminFrom(c, ctl.Users))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "application or bike not found")
		case errors.Is(err, services.ErrNotAssignable),
			errors.Is(err, services.ErrBikeHeld),
			errors.Is(err, services.ErrBikeTaken):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"applicationId": id, "bikeId": req.BikeID, "status": entity.StatusAssigned})
}

// POST /api/admin/applications/:id/terminate
func (ctl *ApplicationController) Terminate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	err := ctl.Rentals.Terminate(id, adminFrom(c, ctl.Users))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "application not found")
		case errors.Is(err, services.ErrNoActiveRental):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"applicationId": id, "status": entity.StatusCompleted})
}
