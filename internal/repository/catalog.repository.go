package repository

import (
	"context" // Request-scoped queries

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CatalogRepository reads the seeded reference data
type CatalogRepository interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	ListYogaPoses(ctx context.Context) ([]domain.YogaPose, error)
	ListMeals(ctx context.Context) ([]domain.Meal, error)
	FindExercise(ctx context.Context, id uint) (*domain.Exercise, error)
	FindMeal(ctx context.Context, id uint) (*domain.Meal, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db}
}

func (r *catalogRepository) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := r.db.WithContext(ctx).Order("id").Find(&exercises).Error // Seed order
	return exercises, err
}

func (r *catalogRepository) ListYogaPoses(ctx context.Context) ([]domain.YogaPose, error) {
	var poses []domain.YogaPose
	err := r.db.WithContext(ctx).Order("id").Find(&poses).Error
	return poses, err
}

func (r *catalogRepository) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	var meals []domain.Meal
	err := r.db.WithContext(ctx).Order("id").Find(&meals).Error
	return meals, err
}

func (r *catalogRepository) FindExercise(ctx context.Context, id uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		return nil, translate(err) // Unknown id becomes ErrNotFound
	}
	return &exercise, nil
}

func (r *catalogRepository) FindMeal(ctx context.Context, id uint) (*domain.Meal, error) {
	var meal domain.Meal
	if err := r.db.WithContext(ctx).First(&meal, id).Error; err != nil {
		return nil, translate(err)
	}
	return &meal, nil
}
