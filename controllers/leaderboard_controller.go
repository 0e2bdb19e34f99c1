package controllers

import (
	"errors"
	"strconv"

	"github.com/brianneil238/BikeRentalWebsite-sub000/pkg/resp"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/brianneil238/BikeRentalWebsite-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	Service *services.LeaderboardService
}

func NewLeaderboardController(s *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Service: s}
}

type RecordRideRequest struct {
	DistanceKm float64 `json:"distanceKm" binding:"required,gt=0"`
}

type leaderboardItem struct {
	UserID     uint    `json:"userId"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
	CO2SavedKg float64 `json:"co2SavedKg"`
}

// GET /api/leaderboard: ?limit=
func (ctl *LeaderboardController) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := ctl.Service.Top(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]leaderboardItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardItem{
			UserID:     e.UserID,
			Name:       e.User.FirstName + " " + e.User.LastName,
			DistanceKm: e.DistanceKm,
			CO2SavedKg: e.CO2SavedKg,
		})
	}
	resp.OK(c, gin.H{"items": out})
}

// POST /api/leaderboard/ride: caller records a ride
func (ctl *LeaderboardController) RecordRide(c *gin.Context) {
	var req RecordRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	userID := utils.CurrentUserID(c)
	if err := ctl.Service.RecordRide(userID, req.DistanceKm); err != nil {
		if errors.Is(err, services.ErrInvalidDistance) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	entry, err := ctl.Service.ForUser(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, entry)
}
