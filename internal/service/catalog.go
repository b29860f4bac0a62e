package service

import (
	"context" // Request-scoped operations

	"fitness_tracker/internal/domain" // Importing domain models
	"fitness_tracker/internal/utils"  // Catalog cache
)

// CachePrefix namespaces every key this application writes to Redis
const CachePrefix = "fitness:"

const (
	exercisesCacheKey = "catalog:exercises"
	yogaCacheKey      = "catalog:yoga"
	mealsCacheKey     = "catalog:meals"
)

// ExerciseGroup is one category of the exercise catalog
type ExerciseGroup struct {
	Category  domain.ExerciseCategory
	Exercises []domain.Exercise
}

// MealGroup is one category of the meal catalog
type MealGroup struct {
	Category domain.MealCategory
	Meals    []domain.Meal
}

// Exercises returns the exercise catalog, cached when Redis is configured
func (s *FitnessService) Exercises(ctx context.Context) ([]domain.Exercise, error) {
	return utils.Remember(ctx, s.cache, exercisesCacheKey, s.catalogTTL, func() ([]domain.Exercise, error) {
		return s.store.Catalog.ListExercises(ctx)
	})
}

// YogaPoses returns the yoga catalog
func (s *FitnessService) YogaPoses(ctx context.Context) ([]domain.YogaPose, error) {
	return utils.Remember(ctx, s.cache, yogaCacheKey, s.catalogTTL, func() ([]domain.YogaPose, error) {
		return s.store.Catalog.ListYogaPoses(ctx)
	})
}

// Meals returns the meal catalog
func (s *FitnessService) Meals(ctx context.Context) ([]domain.Meal, error) {
	return utils.Remember(ctx, s.cache, mealsCacheKey, s.catalogTTL, func() ([]domain.Meal, error) {
		return s.store.Catalog.ListMeals(ctx)
	})
}

// ExercisesByCategory groups the catalog, categories in order of first appearance
func (s *FitnessService) ExercisesByCategory(ctx context.Context) ([]ExerciseGroup, error) {
	exercises, err := s.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	var groups []ExerciseGroup
	index := map[domain.ExerciseCategory]int{}
	for _, e := range exercises {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, ExerciseGroup{Category: e.Category})
		}
		groups[i].Exercises = append(groups[i].Exercises, e)
	}
	return groups, nil
}

// MealsByCategory groups the meal catalog like ExercisesByCategory
func (s *FitnessService) MealsByCategory(ctx context.Context) ([]MealGroup, error) {
	meals, err := s.Meals(ctx)
	if err != nil {
		return nil, err
	}
	var groups []MealGroup
	index := map[domain.MealCategory]int{}
	for _, m := range meals {
		i, ok := index[m.Category]
		if !ok {
			i = len(groups)
			index[m.Category] = i
			groups = append(groups, MealGroup{Category: m.Category})
		}
		groups[i].Meals = append(groups[i].Meals, m)
	}
	return groups, nil
}

// ResetCatalogCache drops cached catalogs so the next read goes to the DB
func (s *FitnessService) ResetCatalogCache(ctx context.Context) error {
	return s.cache.Delete(ctx, exercisesCacheKey, yogaCacheKey, mealsCacheKey)
}
