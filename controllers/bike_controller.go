package controllers

import (
	"errors"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BikeController struct {
	Service *services.BikeService
	Rentals *services.RentalService
	Users   *repository.UserRepository
}

func NewBikeController(s *services.BikeService, r *services.RentalService, users *repository.UserRepository) *BikeController {
	return &BikeController{Service: s, Rentals: r, Users: users}
}

type CreateBikeRequest struct {
	Name      string   `json:"name" binding:"required"`
	Plate     string   `json:"plate" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Amenities []string `json:"amenities"`
	PhotoURL  string   `json:"photoUrl"`
}

type UpdateBikeRequest struct {
	Name      *string  `json:"name"`
	Plate     *string  `json:"plate"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Amenities []string `json:"amenities"`
	PhotoURL  *string  `json:"photoUrl"`
}

// GET /api/bikes: available fleet with coordinates, for the map
func (ctl *BikeController) ListAvailable(c *gin.Context) {
	bikes, err := ctl.Service.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": bikes})
}

// GET /api/admin/bikes: ?status= &plate= &page= &limit=
func (ctl *BikeController) List(c *gin.Context) {
	page, limit := parsePage(c)
	bikes, total, err := ctl.Service.Search(c.DefaultQuery("status", ""), c.DefaultQuery("plate", ""), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": bikes, "total": total, "page": page, "limit": limit})
}

// POST /api/admin/bikes
func (ctl *BikeController) Create(c *gin.Context) {
	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bike := entity.Bike{
		Name:      req.Name,
		Plate:     req.Plate,
		Status:    entity.BikeAvailable,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Amenities: req.Amenities,
		PhotoURL:  req.PhotoURL,
	}
	if err := ctl.Service.Create(&bike, adminFrom(c, ctl.Users)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, bike)
}

// PATCH /api/admin/bikes/:id
func (ctl *BikeController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Plate != nil {
		updates["plate"] = *req.Plate
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Amenities != nil {
		updates["amenities"] = req.Amenities
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	bike, err := ctl.Service.Update(id, updates, adminFrom(c, ctl.Users))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "bike not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, bike)
}

// DELETE /api/admin/bikes/:id
func (ctl *BikeController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	err := ctl.Service.Delete(id, adminFrom(c, ctl.Users))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "bike not found")
		case errors.Is(err, services.ErrBikeRented):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /api/admin/bikes/:id/return: end the rental holding this bike
func (ctl *BikeController) Return(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	err := ctl.Rentals.TerminateByBike(id, adminFrom(c, ctl.Users))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "no active rental for this bike")
		case errors.Is(err, services.ErrNoActiveRental):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"bikeId": id, "status": entity.BikeAvailable})
}
