package database

import (
	"dishrank-food-tracker/enums"
	"dishrank-food-tracker/models"
	"fmt"
	"os"
	"time"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

// Bootstrap destroys the backing store, recreates the schema and seeds the
// food categories. Every previous entry is lost.
func Bootstrap(config Config, logger Logger) (*gorm.DB, error) {
	if _, file := ResolveURL(config.URL); file != "" {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("database: remove %s: %w", file, err)
		}
	}

	db, err := Open(config, logger)
	if err != nil {
		return nil, err
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := SeedCategories(db, enums.FoodCategories); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// CreateSchema drops and recreates the three tables.
func CreateSchema(db *gorm.DB) error {
	if err := db.DropTableIfExists(&models.EntryItem{}, &models.Entry{}, &models.Category{}).Error; err != nil {
		return fmt.Errorf("database: drop tables: %w", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Entry{}, &models.EntryItem{}).Error; err != nil {
		return fmt.Errorf("database: create tables: %w", err)
	}
	return nil
}

// SeedCategories inserts the names as one batch and commits.
func SeedCategories(db *gorm.DB, names []string) error {
	now := time.Now().UTC()
	records := make([]interface{}, 0, len(names))
	for _, name := range names {
		records = append(records, &models.Category{Name: name, CreatedOn: &now})
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("database: begin seed: %w", tx.Error)
	}
	if err := gormbulk.BulkInsert(tx, records, len(records)+1); err != nil {
		tx.Rollback()
		return fmt.Errorf("database: seed categories: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("database: commit seed: %w", err)
	}
	return nil
}
