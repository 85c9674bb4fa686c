package db

import (
	"log"
	"time"

	"github.com/barberhub/barberhub-api/internal/config"
	"github.com/barberhub/barberhub-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.Barber{},
		&models.Service{},
		&models.Availability{},
		&models.Booking{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Two transactions inserting into a free slot see no rows to lock, so
	// slot exclusivity needs a constraint the database enforces at insert.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		ON bookings (barber_id, date)
		WHERE status IN ('pending', 'confirmed', 'rescheduled')
	`).Error; err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	return db
}
