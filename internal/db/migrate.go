package db

import (
	"context"

	"fitness_tracker/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(ctx context.Context, db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.WithContext(ctx).AutoMigrate(domain.Models()...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}

// TableCounts returns the row count of every table, keyed by table name
func TableCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, model := range domain.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, err
		}
		var n int64
		if err := db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[stmt.Schema.Table] = n
	}
	return counts, nil
}
