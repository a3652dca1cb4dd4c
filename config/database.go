package config

import (
	"fmt"
	"log"
	"strings"

	"blogly/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DSN builds the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path + "?_foreign_keys=on"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Name, d.SSLMode)
	if d.Password != "" {
		dsn += " password=" + d.Password
	}
	return dsn
}

// InitDB opens the database and migrates the schema.
func InitDB(cfg DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Database connected (%s) and migrated", cfg.Driver)
	return db, nil
}

// Migrate creates or updates users, posts, tags and posts_tags.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Post{}, "Tags", &models.PostTag{}); err != nil {
		return fmt.Errorf("failed to set up posts_tags: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Posts", &models.PostTag{}); err != nil {
		return fmt.Errorf("failed to set up posts_tags: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{}, &models.PostTag{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func logLevel(name string) logger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
