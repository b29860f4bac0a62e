// Package dbtest opens throwaway in-memory databases for package tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"fitness_tracker/internal/config"
	"fitness_tracker/internal/db"

	"gorm.io/gorm"
)

var seq atomic.Int64

// New returns a migrated, empty in-memory SQLite database private to t
func New(t testing.TB) *gorm.DB {
	t.Helper()
	path := fmt.Sprintf("file:fitnesstest_%d?mode=memory&cache=shared", seq.Add(1))
	gdb, err := db.Open(config.DatabaseConfig{Driver: "sqlite", Path: path})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.Migrate(context.Background(), gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gdb
}

// Seeded returns a migrated database with the reference catalog loaded
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()
	gdb := New(t)
	if _, err := db.Seed(context.Background(), gdb); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return gdb
}
