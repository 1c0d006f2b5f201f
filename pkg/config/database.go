package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes the PostgreSQL database connection using GORM.
// TranslateError surfaces constraint violations as gorm.ErrDuplicatedKey,
// which the error mapping turns into client-facing 4xx responses.
func InitDB(cfg *Config) (*gorm.DB, error) {
	if cfg.PostgresConnStr == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresConnStr), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	logrus.Info("Successfully connected to PostgreSQL!")
	return db, nil
}

// CloseDB closes the underlying database connection.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("Error getting SQL DB from GORM: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Error closing PostgreSQL connection: %v", err)
	} else {
		logrus.Info("PostgreSQL connection closed.")
	}
}
