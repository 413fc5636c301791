package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/config"
	"github.com/gymstack/gym-manager/internal/models"
)

// Seed inserts the reference rows the back office expects on a fresh
// database and makes sure a default administrator account exists.
// Every step checks before it writes, so restarts are harmless.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedPlans(db); err != nil {
		return err
	}
	if err := seedRooms(db); err != nil {
		return err
	}
	return ensureAdmin(db, cfg)
}

func seedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MembershipPlan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plans := []models.MembershipPlan{
		{PlanName: "Basic Plan", MonthlyFee: 29.99, AccessLevel: "Basic"},
		{PlanName: "Standard Plan", MonthlyFee: 49.99, AccessLevel: "Standard"},
		{PlanName: "Premium Plan", MonthlyFee: 79.99, AccessLevel: "Premium"},
		{PlanName: "VIP Plan", MonthlyFee: 129.99, AccessLevel: "VIP"},
	}
	if err := db.Create(&plans).Error; err != nil {
		return err
	}

	log.Println("seeded membership plans")
	return nil
}

func seedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []models.Room{
		{RoomName: "Main Gym", Capacity: 50},
		{RoomName: "Cardio Room", Capacity: 30},
		{RoomName: "Yoga Studio", Capacity: 20},
		{RoomName: "Spin Class Room", Capacity: 25},
		{RoomName: "Weight Room", Capacity: 40},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	log.Println("seeded rooms")
	return nil
}

func ensureAdmin(db *gorm.DB, cfg *config.Config) error {
	var user models.User
	err := db.Where("username = ?", cfg.AdminUser).First(&user).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("created default admin user %q", cfg.AdminUser)
	return nil
}
