package controllers

import (
	"net/http"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Dashboard: headline numbers for the admin landing page.
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var totalBikes int64
	var availableBikes int64
	var pendingApps int64
	var activeRentals int64
	var completedRentals int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count users failed"})
		return
	}
	if err := db.Model(&entity.Bike{}).Count(&totalBikes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count bikes failed"})
		return
	}
	if err := db.Model(&entity.Bike{}).
		Where("status = ?", entity.BikeAvailable).
		Count(&availableBikes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count available bikes failed"})
		return
	}
	if err := db.Model(&entity.Application{}).
		Where("status = ?", entity.StatusPending).
		Count(&pendingApps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count pending applications failed"})
		return
	}
	if err := db.Model(&entity.Application{}).
		Where("status IN ?", entity.TerminableStatuses).
		Count(&activeRentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count active rentals failed"})
		return
	}
	if err := db.Model(&entity.RentalHistory{}).Count(&completedRentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count rental history failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":          totalUsers,
		"totalBikes":          totalBikes,
		"availableBikes":      availableBikes,
		"pendingApplications": pendingApps,
		"activeRentals":       activeRentals,
		"completedRentals":    completedRentals,
	})
}
