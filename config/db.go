package config

import (
	"fmt"
	"os"
	"time"

	"registration/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"), sslMode)
	return dsn
}

// BootDB opens the configured database and runs migrations.
func BootDB() (*gorm.DB, error) {
	var err error
	db, err = OpenDB(GetDatabaseURL())
	if err != nil {
		return nil, err
	}

	GetLogrusInstance().Info("DB initialized")
	return db, nil
}

// OpenDB connects to dsn and migrates the people table.
func OpenDB(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(gormLogLevel()),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(conn); err != nil {
		return conn, err
	}
	return conn, nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Person{}); err != nil {
		return fmt.Errorf("failed to migrate people table: %w", err)
	}

	// email is the login key, unique regardless of case
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_people_email_lower
		ON people (LOWER(email)) WHERE email IS NOT NULL`).Error; err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

func gormLogLevel() logger.LogLevel {
	if GetLogrusInstance().IsLevelEnabled(logrus.DebugLevel) {
		return logger.Info
	}
	return logger.Warn
}
