package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-management-backend/models"
)

// ConnectDatabase opens the MySQL connection and migrates the table set in
// parent-before-child order. The returned handle is passed explicitly into
// the service layer; there is no package-level DB.
func ConnectDatabase(settings *Settings) (*gorm.DB, error) {
	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(settings.DatabaseDSN), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := MigrateTables(db); err != nil {
		return nil, err
	}
	return db, nil
}

// MigrateTables creates rooms before bookings and rentals so the FK
// constraints resolve.
func MigrateTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.Rental{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
