package repository

import (
	"context" // Request-scoped queries

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *domain.UserProgress) error
	// FindRecentByUser returns up to limit rows, newest first
	FindRecentByUser(ctx context.Context, userID uint, limit int) ([]domain.UserProgress, error)
	// FindEarliestByUser returns up to limit rows, oldest first
	FindEarliestByUser(ctx context.Context, userID uint, limit int) ([]domain.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db}
}

func (r *progressRepository) Create(ctx context.Context, progress *domain.UserProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) FindRecentByUser(ctx context.Context, userID uint, limit int) ([]domain.UserProgress, error) {
	var rows []domain.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC"). // Same-day entries newest first
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *progressRepository) FindEarliestByUser(ctx context.Context, userID uint, limit int) ([]domain.UserProgress, error) {
	var rows []domain.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
