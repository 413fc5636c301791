package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/config"
	"github.com/gymstack/gym-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
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

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates or updates every table. AutoMigrate is idempotent,
// so running it against an initialized schema is a no-op.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MembershipPlan{},
		&models.Member{},
		&models.MembershipHistory{},
		&models.Trainer{},
		&models.Room{},
		&models.FitnessClass{},
		&models.ClassSchedule{},
		&models.Attendance{},
		&models.Payment{},
		&models.Equipment{},
		&models.Staff{},
		&models.MaintenanceLog{},
		&models.CalendarEvent{},
		&models.AuditLog{},
	)
}
