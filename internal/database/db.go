// Package database opens the relational store and keeps its schema current.
package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"bizdesk/internal/config"
	"bizdesk/internal/employees"
	"bizdesk/internal/inventory"
	"bizdesk/internal/sales"
)

// Connect opens the store named by DATABASE_URL, falling back to a local
// sqlite file, and migrates the three tables.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialect, source := "postgres", cfg.DatabaseURL
	if source == "" {
		dialect, source = "sqlite3", cfg.DatabaseFile
	}

	db, err := gorm.Open(dialect, source)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&inventory.Item{}, &sales.Sale{}, &employees.Employee{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
