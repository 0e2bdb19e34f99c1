package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianneil238/BikeRentalWebsite-sub000/configs"
	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"github.com/brianneil238/BikeRentalWebsite-sub000/mailer"
	"github.com/brianneil238/BikeRentalWebsite-sub000/routes"
	"github.com/brianneil238/BikeRentalWebsite-sub000/storage"
	"github.com/brianneil238/BikeRentalWebsite-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testConfig = &configs.Config{
	JWTSecret: "test-secret",
	JWTTTL:    time.Hour,
	BaseURL:   "http://localhost:8000",
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
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

	store, err := storage.NewLocalStorage(t.TempDir(), testConfig.BaseURL)
	require.NoError(t, err)

	r := gin.New()
	routes.RegisterRoutes(r, db, testConfig, mailer.Noop{}, store)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	token, err := utils.GenerateToken(u.ID, u.Role, testConfig.JWTSecret, testConfig.JWTTTL)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
