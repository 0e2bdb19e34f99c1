package routes

import (
	"github.com/brianneil238/BikeRentalWebsite-sub000/configs"
	"github.com/brianneil238/BikeRentalWebsite-sub000/controllers"
	"github.com/brianneil238/BikeRentalWebsite-sub000/mailer"
	"github.com/brianneil238/BikeRentalWebsite-sub000/middlewares"
	"github.com/brianneil238/BikeRentalWebsite-sub000/repository"
	"github.com/brianneil238/BikeRentalWebsite-sub000/services"
	"github.com/brianneil238/BikeRentalWebsite-sub000/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, m mailer.Mailer, store storage.Storage) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	bikeRepo := repository.NewBikeRepository(db)
	historyRepo := repository.NewRentalHistoryRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	boardRepo := repository.NewLeaderboardRepository(db)

	// Services
	activitySvc := services.NewActivityService(activityRepo)
	authSvc := services.NewAuthService(userRepo, m, cfg.JWTSecret, cfg.JWTTTL, cfg.BaseURL)
	appSvc := services.NewApplicationService(db, appRepo, activitySvc)
	rentalSvc := services.NewRentalService(db, appRepo, bikeRepo, historyRepo, boardRepo, activitySvc, m)
	bikeSvc := services.NewBikeService(bikeRepo, activitySvc)
	userSvc := services.NewUserService(userRepo, activitySvc)
	boardSvc := services.NewLeaderboardService(boardRepo)
	historySvc := services.NewRentalHistoryService(historyRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	appCtrl := controllers.NewApplicationController(appSvc, rentalSvc, userRepo)
	bikeCtrl := controllers.NewBikeController(bikeSvc, rentalSvc, userRepo)
	userCtrl := controllers.NewUserController(userSvc, userRepo)
	adminCtrl := controllers.NewAdminController(db)
	historyCtrl := controllers.NewRentalHistoryController(historySvc)
	activityCtrl := controllers.NewActivityController(activitySvc)
	boardCtrl := controllers.NewLeaderboardController(boardSvc)
	uploadCtrl := controllers.NewUploadController(store)

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Leaderboard (public read)
	api.GET("/leaderboard", boardCtrl.Top)

	// Logged-in students
	u := api.Group("", middlewares.AuthMiddleware(cfg))
	{
		u.POST("/applications", appCtrl.Apply)
		u.GET("/applications/me", appCtrl.ListMine)
		u.GET("/bikes", bikeCtrl.ListAvailable)
		u.POST("/leaderboard/ride", boardCtrl.RecordRide)
		u.POST("/upload", uploadCtrl.Upload)
	}

	// Admin only
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/applications", appCtrl.List)
		admin.GET("/applications/:id", appCtrl.Detail)
		admin.PATCH("/applications/:id/status", appCtrl.UpdateStatus)
		admin.POST("/applications/:id/assign", appCtrl.Assign)
		admin.POST("/applications/:id/terminate", appCtrl.Terminate)

		admin.GET("/bikes", bikeCtrl.List)
		admin.POST("/bikes", bikeCtrl.Create)
		admin.PATCH("/bikes/:id", bikeCtrl.Update)
		admin.DELETE("/bikes/:id", bikeCtrl.Delete)
		admin.POST("/bikes/:id/return", bikeCtrl.Return)

		admin.GET("/users", userCtrl.List)
		admin.POST("/users", userCtrl.Create)
		admin.PATCH("/users/:id", userCtrl.Update)
		admin.DELETE("/users/:id", userCtrl.Delete)

		admin.GET("/rental-history", historyCtrl.List)
		admin.GET("/activity", activityCtrl.List)
	}
}
