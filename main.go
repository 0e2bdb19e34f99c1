package main

import (
	"fmt"
	"log"

	"github.com/brianneil238/BikeRentalWebsite-sub000/configs"
	"github.com/brianneil238/BikeRentalWebsite-sub000/mailer"
	"github.com/brianneil238/BikeRentalWebsite-sub000/middlewares"
	"github.com/brianneil238/BikeRentalWebsite-sub000/routes"
	"github.com/brianneil238/BikeRentalWebsite-sub000/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedBikes(); err != nil {
		log.Fatalf("seed bikes failed: %v", err)
	}

	// mail relay; disabled without SMTP_HOST
	var m mailer.Mailer = mailer.Noop{}
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	// media host; local disk without a bucket
	var store storage.Storage
	if cfg.S3Bucket != "" {
		s3store, err := storage.NewS3Storage(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Fatalf("s3 storage init failed: %v", err)
		}
		store = s3store
	} else {
		local, err := storage.NewLocalStorage(cfg.UploadDir, cfg.BaseURL)
		if err != nil {
			log.Fatalf("local storage init failed: %v", err)
		}
		store = local
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve local uploads (document scans, bike photos)
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, m, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
