package db

import (
	"context"
	"fmt"

	"fitness_tracker/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedReport counts the rows inserted by one Seed call
type SeedReport struct {
	Exercises int
	YogaPoses int
	Meals     int
}

// Inserted is the total number of catalog rows written
func (r SeedReport) Inserted() int {
	return r.Exercises + r.YogaPoses + r.Meals
}

// Seed fills the reference tables that are still empty. A table that already
// has rows is left untouched, so repeated startups never duplicate the catalog.
func Seed(ctx context.Context, db *gorm.DB) (SeedReport, error) {
	var report SeedReport
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if report.Exercises, err = seedIfEmpty(tx, ExerciseCatalog()); err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
		if report.YogaPoses, err = seedIfEmpty(tx, YogaCatalog()); err != nil {
			return fmt.Errorf("seed yoga poses: %w", err)
		}
		if report.Meals, err = seedIfEmpty(tx, MealCatalog()); err != nil {
			return fmt.Errorf("seed meals: %w", err)
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}
	logrus.WithFields(logrus.Fields{
		"exercises":  report.Exercises,
		"yoga_poses": report.YogaPoses,
		"meals":      report.Meals,
	}).Info("Catalog seed finished")
	return report, nil
}

func seedIfEmpty[T any](tx *gorm.DB, rows []T) (int, error) {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ExerciseCatalog is the fixed exercise reference data
func ExerciseCatalog() []domain.Exercise {
	return []domain.Exercise{
		{Name: "Push-ups", Category: domain.CategoryStrength, Description: "Classic upper body exercise", CaloriesPerMinute: 8, ImageURL: "pushup.jpg"},
		{Name: "Pull-ups", Category: domain.CategoryStrength, Description: "Upper body pulling exercise", CaloriesPerMinute: 10, ImageURL: "pullup.jpg"},
		{Name: "Squats", Category: domain.CategoryStrength, Description: "Lower body compound exercise", CaloriesPerMinute: 7, ImageURL: "squat.jpg"},
		{Name: "Deadlifts", Category: domain.CategoryStrength, Description: "Full body compound exercise", CaloriesPerMinute: 12, ImageURL: "deadlift.jpg"},
		{Name: "Bench Press", Category: domain.CategoryStrength, Description: "Chest and tricep exercise", CaloriesPerMinute: 9, ImageURL: "benchpress.jpg"},

		{Name: "Running", Category: domain.CategoryCardio, Description: "High intensity cardio", CaloriesPerMinute: 15, ImageURL: "running.jpg"},
		{Name: "Cycling", Category: domain.CategoryCardio, Description: "Low impact cardio", CaloriesPerMinute: 12, ImageURL: "cycling.jpg"},
		{Name: "Swimming", Category: domain.CategoryCardio, Description: "Full body cardio", CaloriesPerMinute: 14, ImageURL: "swimming.jpg"},
		{Name: "Jumping Jacks", Category: domain.CategoryCardio, Description: "Quick cardio exercise", CaloriesPerMinute: 10, ImageURL: "jumpingjacks.jpg"},
		{Name: "Burpees", Category: domain.CategoryCardio, Description: "High intensity full body", CaloriesPerMinute: 16, ImageURL: "burpees.jpg"},

		{Name: "Planks", Category: domain.CategoryBodyweight, Description: "Core strengthening", CaloriesPerMinute: 5, ImageURL: "plank.jpg"},
		{Name: "Mountain Climbers", Category: domain.CategoryBodyweight, Description: "Cardio and core", CaloriesPerMinute: 11, ImageURL: "mountainclimbers.jpg"},
		{Name: "Lunges", Category: domain.CategoryBodyweight, Description: "Lower body exercise", CaloriesPerMinute: 6, ImageURL: "lunges.jpg"},
		{Name: "Crunches", Category: domain.CategoryBodyweight, Description: "Abdominal exercise", CaloriesPerMinute: 4, ImageURL: "crunches.jpg"},
		{Name: "Dips", Category: domain.CategoryBodyweight, Description: "Tricep exercise", CaloriesPerMinute: 7, ImageURL: "dips.jpg"},
	}
}

// YogaCatalog is the fixed yoga pose reference data
func YogaCatalog() []domain.YogaPose {
	return []domain.YogaPose{
		{Name: "Downward Dog", Benefits: "Stretches hamstrings and calves", HoldTime: 60, CaloriesBurned: 3, Difficulty: domain.DifficultyBeginner},
		{Name: "Warrior I", Benefits: "Strengthens legs and core", HoldTime: 45, CaloriesBurned: 4, Difficulty: domain.DifficultyBeginner},
		{Name: "Tree Pose", Benefits: "Improves balance and focus", HoldTime: 30, CaloriesBurned: 2, Difficulty: domain.DifficultyBeginner},
		{Name: "Child's Pose", Benefits: "Relaxes back and shoulders", HoldTime: 90, CaloriesBurned: 1, Difficulty: domain.DifficultyBeginner},
		{Name: "Cobra Pose", Benefits: "Strengthens back muscles", HoldTime: 30, CaloriesBurned: 3, Difficulty: domain.DifficultyIntermediate},
		{Name: "Triangle Pose", Benefits: "Stretches sides and legs", HoldTime: 45, CaloriesBurned: 3, Difficulty: domain.DifficultyIntermediate},
		{Name: "Pigeon Pose", Benefits: "Opens hips and stretches", HoldTime: 60, CaloriesBurned: 2, Difficulty: domain.DifficultyIntermediate},
		{Name: "Crow Pose", Benefits: "Builds arm and core strength", HoldTime: 20, CaloriesBurned: 5, Difficulty: domain.DifficultyAdvanced},
	}
}

// MealCatalog is the fixed meal reference data
func MealCatalog() []domain.Meal {
	return []domain.Meal{
		{Name: "Oatmeal with Berries", Category: domain.MealBreakfast, Calories: 250, Protein: 8, Carbs: 45, Fats: 4, IsVegetarian: true},
		{Name: "Scrambled Eggs", Category: domain.MealBreakfast, Calories: 200, Protein: 14, Carbs: 2, Fats: 14},
		{Name: "Greek Yogurt", Category: domain.MealBreakfast, Calories: 150, Protein: 15, Carbs: 12, Fats: 0, IsVegetarian: true},
		{Name: "Avocado Toast", Category: domain.MealBreakfast, Calories: 300, Protein: 8, Carbs: 30, Fats: 18, IsVegetarian: true},

		{Name: "Grilled Chicken Salad", Category: domain.MealLunch, Calories: 350, Protein: 30, Carbs: 15, Fats: 18},
		{Name: "Quinoa Bowl", Category: domain.MealLunch, Calories: 400, Protein: 12, Carbs: 60, Fats: 12, IsVegetarian: true},
		{Name: "Tuna Sandwich", Category: domain.MealLunch, Calories: 320, Protein: 25, Carbs: 35, Fats: 8},
		{Name: "Vegetable Soup", Category: domain.MealLunch, Calories: 180, Protein: 6, Carbs: 25, Fats: 5, IsVegetarian: true},

		{Name: "Grilled Salmon", Category: domain.MealDinner, Calories: 400, Protein: 35, Carbs: 0, Fats: 25},
		{Name: "Chicken Breast", Category: domain.MealDinner, Calories: 300, Protein: 40, Carbs: 0, Fats: 8},
		{Name: "Lentil Curry", Category: domain.MealDinner, Calories: 350, Protein: 18, Carbs: 45, Fats: 8, IsVegetarian: true},
		{Name: "Stir-fried Vegetables", Category: domain.MealDinner, Calories: 200, Protein: 8, Carbs: 25, Fats: 8, IsVegetarian: true},

		{Name: "Apple", Category: domain.MealSnack, Calories: 80, Protein: 0, Carbs: 20, Fats: 0, IsVegetarian: true},
		{Name: "Almonds (1 oz)", Category: domain.MealSnack, Calories: 160, Protein: 6, Carbs: 6, Fats: 14, IsVegetarian: true},
		{Name: "Protein Shake", Category: domain.MealSnack, Calories: 120, Protein: 25, Carbs: 3, Fats: 1, IsVegetarian: true},
		{Name: "Banana", Category: domain.MealSnack, Calories: 100, Protein: 1, Carbs: 25, Fats: 0, IsVegetarian: true},
	}
}
