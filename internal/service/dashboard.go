package service

import (
	"context" // Request-scoped operations
	"fmt"     // Error wrapping
	"time"    // Dates

	"fitness_tracker/internal/domain"  // Importing domain models
	"fitness_tracker/internal/fitness" // BMI and calorie totals
)

// Dashboard is everything the dashboard page shows for one user
type Dashboard struct {
	User           *domain.User
	BMI            float64
	BMICategory    string
	RecentProgress []domain.UserProgress
	Today          fitness.DayTotals
	Date           time.Time
}

// Dashboard computes BMI, the latest progress rows and today's calorie totals
func (s *FitnessService) Dashboard(ctx context.Context, user *domain.User) (*Dashboard, error) {
	today := s.Today()
	d := &Dashboard{User: user, Date: today}
	if bmi, err := fitness.BMI(user.Height, user.Weight); err == nil {
		d.BMI = bmi
		d.BMICategory = fitness.BMICategory(bmi)
	}

	recent, err := s.store.Progress.FindRecentByUser(ctx, user.ID, RecentProgressLimit)
	if err != nil {
		return nil, fmt.Errorf("recent progress: %w", err)
	}
	d.RecentProgress = recent

	exercises, err := s.store.Logs.FindExerciseLogsByUserAndDate(ctx, user.ID, today)
	if err != nil {
		return nil, fmt.Errorf("today's exercise logs: %w", err)
	}
	meals, err := s.store.Logs.FindMealLogsByUserAndDate(ctx, user.ID, today)
	if err != nil {
		return nil, fmt.Errorf("today's meal logs: %w", err)
	}
	d.Today = fitness.Totals(exercises, meals) // Net may be negative
	return d, nil
}

// ProgressSeries is the weight history as parallel arrays, oldest first
type ProgressSeries struct {
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
}

// ProgressSeries returns up to SeriesLimit of the user's earliest progress rows
func (s *FitnessService) ProgressSeries(ctx context.Context, userID uint) (*ProgressSeries, error) {
	rows, err := s.store.Progress.FindEarliestByUser(ctx, userID, SeriesLimit)
	if err != nil {
		return nil, fmt.Errorf("progress series: %w", err)
	}
	series := &ProgressSeries{
		Dates:   make([]string, 0, len(rows)),
		Weights: make([]float64, 0, len(rows)),
	}
	for _, p := range rows {
		series.Dates = append(series.Dates, p.Date.In(time.Local).Format(fitness.DateLayout))
		series.Weights = append(series.Weights, p.Weight)
	}
	return series, nil
}
