package controllers_test

import (
	"net/http"
	"testing"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyPayload() map[string]any {
	return map[string]any{
		"firstName":     "Ana",
		"lastName":      "Reyes",
		"email":         "ana@uni.edu",
		"phoneNumber":   "09171234567",
		"studentNumber": "2021-00123",
		"program":       "BS Computer Science",
		"documentUrl":   "http://localhost:8000/uploads/cor.pdf",
	}
}

func TestApplyEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	student := createUser(t, db, "ana@uni.edu", "secret123", "student")
	token := tokenFor(t, student)

	t.Run("requires auth", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/applications", "", applyPayload())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates pending application", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/applications", token, applyPayload())
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, "pending", data["status"])
	})

	t.Run("duplicate while pending is a 400 with no new row", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/applications", token, applyPayload())
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var count int64
		require.NoError(t, db.Model(&entity.Application{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/applications", token, map[string]any{"firstName": "Ana"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminApplicationEndpoints(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@uni.edu", "secret123", "admin")
	student := createUser(t, db, "ana@uni.edu", "secret123", "student")
	adminToken := tokenFor(t, admin)
	studentToken := tokenFor(t, student)

	w := doJSON(r, http.MethodPost, "/api/applications", studentToken, applyPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var app entity.Application
	require.NoError(t, db.Where("user_id = ?", student.ID).First(&app).Error)

	bike := entity.Bike{Name: "Cruiser", Plate: "BK-3001", Status: entity.BikeAvailable}
	require.NoError(t, db.Create(&bike).Error)

	t.Run("student cannot reach admin routes", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/admin/applications", studentToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("assign before approval fails", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/admin/applications/1/assign", adminToken,
			map[string]any{"bikeId": bike.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("approve then assign", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/admin/applications/1/status", adminToken,
			map[string]any{"status": "approved"})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodPost, "/api/admin/applications/1/assign", adminToken,
			map[string]any{"bikeId": bike.ID})
		require.Equal(t, http.StatusOK, w.Code)

		var gotBike entity.Bike
		require.NoError(t, db.First(&gotBike, bike.ID).Error)
		assert.Equal(t, entity.BikeRented, gotBike.Status)
	})

	t.Run("review after assignment is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/admin/applications/1/status", adminToken,
			map[string]any{"status": "rejected"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("terminate completes and frees", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/admin/applications/1/terminate", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var gotApp entity.Application
		require.NoError(t, db.First(&gotApp, app.ID).Error)
		assert.Equal(t, entity.StatusCompleted, gotApp.Status)

		var history int64
		require.NoError(t, db.Model(&entity.RentalHistory{}).Count(&history).Error)
		assert.EqualValues(t, 1, history)
	})

	t.Run("unknown application is a 404", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/admin/applications/999/status", adminToken,
			map[string]any{"status": "approved"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
