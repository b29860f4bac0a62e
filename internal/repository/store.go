package repository

import (
	"context" // Request-scoped queries
	"errors"  // Sentinel errors

	"gorm.io/gorm" // GORM ORM library
)

// ErrNotFound is returned when a lookup by key matches no row
var ErrNotFound = errors.New("record not found")

// Store groups the repositories that share one database handle
type Store struct {
	db       *gorm.DB
	Users    UserRepository
	Catalog  CatalogRepository
	Progress ProgressRepository
	Logs     LogRepository
}

// NewStore builds every repository on db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Users:    NewUserRepository(db),
		Catalog:  NewCatalogRepository(db),
		Progress: NewProgressRepository(db),
		Logs:     NewLogRepository(db),
	}
}

// Transaction runs fn with a Store bound to a single transaction.
// fn returning an error rolls back every write made through tx.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx)) // Returning an error rolls back
	})
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
