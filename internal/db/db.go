package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hairloom/salon-booking/internal/config"
	"github.com/hairloom/salon-booking/internal/models"
	"github.com/hairloom/salon-booking/internal/tokens"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Stylist{},
		&models.Service{},
		&models.Booking{},
		&models.Payment{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seed(db, cfg)

	return db
}

// seed makes a fresh database usable out of the box: one owner account,
// one stylist profile and a small service catalogue. It never touches
// existing rows.
func seed(db *gorm.DB, cfg *config.Config) {
	var ownerCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&ownerCount)
	if ownerCount == 0 {
		hashed, err := tokens.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("failed to hash owner password: %v", err)
		}
		owner := models.User{
			Email:        cfg.AdminEmail,
			PasswordHash: hashed,
			FullName:     "Salon Owner",
			Role:         models.RoleOwner,
			IsActive:     true,
		}
		if err := db.Create(&owner).Error; err != nil {
			log.Printf("seed: owner account: %v", err)
		}
	}

	var stylistCount int64
	db.Model(&models.Stylist{}).Count(&stylistCount)
	if stylistCount == 0 {
		hashed, _ := tokens.HashPassword("Stylist@12345")
		user := models.User{
			Email:        "sam@salon.local",
			PasswordHash: hashed,
			FullName:     "Sam Rivera",
			Role:         models.RoleStylist,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err == nil {
			db.Create(&models.Stylist{
				UserID:      user.ID,
				DisplayName: "Sam",
				Bio:         "Cuts, color and styling.",
				StartHour:   9,
				EndHour:     20,
			})
		}
	}

	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		db.Create(&[]models.Service{
			{Name: "Women's Haircut", Description: "Wash, cut and blow-dry.", Price: 40, DurationMin: 60, Active: true},
			{Name: "Men's Haircut", Description: "Classic cut and finish.", Price: 25, DurationMin: 30, Active: true},
			{Name: "Color & Style", Description: "Full color with styling.", Price: 100, DurationMin: 120, Active: true},
		})
	}
}
