package repository

import (
	"context" // Request-scoped queries
	"time"    // Log dates

	"fitness_tracker/internal/domain"  // Importing domain models
	"fitness_tracker/internal/fitness" // Day boundaries

	"gorm.io/gorm" // GORM ORM library
)

// LogRepository appends and reads per-user activity logs
type LogRepository interface {
	CreateExerciseLog(ctx context.Context, log *domain.ExerciseLog) error
	CreateMealLog(ctx context.Context, log *domain.MealLog) error
	// FindExerciseLogsByUserAndDate returns the user's exercise logs on day's calendar date
	FindExerciseLogsByUserAndDate(ctx context.Context, userID uint, day time.Time) ([]domain.ExerciseLog, error)
	// FindMealLogsByUserAndDate returns the user's meal logs on day's calendar date
	FindMealLogsByUserAndDate(ctx context.Context, userID uint, day time.Time) ([]domain.MealLog, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db}
}

func (r *logRepository) CreateExerciseLog(ctx context.Context, log *domain.ExerciseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *logRepository) CreateMealLog(ctx context.Context, log *domain.MealLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *logRepository) FindExerciseLogsByUserAndDate(ctx context.Context, userID uint, day time.Time) ([]domain.ExerciseLog, error) {
	start, end := fitness.DayRange(day) // [midnight, next midnight)
	var logs []domain.ExerciseLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id").
		Find(&logs).Error
	return logs, err
}

func (r *logRepository) FindMealLogsByUserAndDate(ctx context.Context, userID uint, day time.Time) ([]domain.MealLog, error) {
	start, end := fitness.DayRange(day)
	var logs []domain.MealLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id").
		Find(&logs).Error
	return logs, err
}
