package configs

import (
	"log"

	"github.com/brianneil238/BikeRentalWebsite-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedBikes loads a small demo fleet when the bike table is empty.
func SeedBikes() error {
	db := DB()

	var count int64
	db.Model(&entity.Bike{}).Count(&count)
	if count > 0 {
		return nil
	}

	bikes := []entity.Bike{
		{Name: "Campus Cruiser 1", Plate: "BK-0001", Status: entity.BikeAvailable, Amenities: []string{"basket", "lock"}},
		{Name: "Campus Cruiser 2", Plate: "BK-0002", Status: entity.BikeAvailable, Amenities: []string{"lock"}},
		{Name: "Campus Cruiser 3", Plate: "BK-0003", Status: entity.BikeAvailable, Amenities: []string{"basket", "lock", "lights"}},
	}
	if err := db.Create(&bikes).Error; err != nil {
		return err
	}
	log.Println("demo bikes seeded")
	return nil
}
