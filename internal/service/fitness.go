package service

import (
	"context" // Request-scoped operations
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"math"    // NaN and Inf checks
	"strings" // Blank field checks
	"time"    // Clock

	"fitness_tracker/internal/domain"     // Importing domain models
	"fitness_tracker/internal/fitness"    // Calorie and BMI maths
	"fitness_tracker/internal/repository" // Query layer
	"fitness_tracker/internal/utils"      // Catalog cache

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // Duplicate key errors
)

const (
	// RecentProgressLimit is how many progress rows the dashboard shows
	RecentProgressLimit = 7
	// SeriesLimit caps the points returned for the weight chart
	SeriesLimit = 30

	maxPasswordBytes = 72 // bcrypt ignores anything longer
)

// FitnessService implements every user-facing operation on top of the store
type FitnessService struct {
	store      *repository.Store
	cache      *utils.Cache
	catalogTTL time.Duration
	bcryptCost int
	now        func() time.Time
}

// Option customises a FitnessService
type Option func(*FitnessService)

// WithCache reads reference catalogs through c for ttl
func WithCache(c *utils.Cache, ttl time.Duration) Option {
	return func(s *FitnessService) {
		s.cache = c
		s.catalogTTL = ttl
	}
}

// WithClock replaces time.Now, which decides what "today" is
func WithClock(now func() time.Time) Option {
	return func(s *FitnessService) { s.now = now }
}

// WithBcryptCost sets the password hashing cost
func WithBcryptCost(cost int) Option {
	return func(s *FitnessService) { s.bcryptCost = cost }
}

func NewFitnessService(store *repository.Store, opts ...Option) *FitnessService {
	s := &FitnessService{
		store:      store,
		catalogTTL: 5 * time.Minute,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is local midnight of the current day
func (s *FitnessService) Today() time.Time {
	return fitness.DayStart(s.now())
}

// Ping checks the database connection
func (s *FitnessService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// RegisterInput is what the registration form carries
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Height   float64 // cm
	Weight   float64 // kg
	Goal     domain.Goal
}

func (in RegisterInput) validate() error {
	switch {
	case strings.TrimSpace(in.Username) == "", strings.TrimSpace(in.Email) == "":
		return ErrInvalidInput
	case in.Password == "", len(in.Password) > maxPasswordBytes:
		return ErrInvalidInput
	case !positive(in.Height), !positive(in.Weight):
		return ErrInvalidInput
	case !in.Goal.Valid():
		return ErrInvalidInput
	}
	return nil
}

// Register creates a user with a hashed password. The email is compared exactly
// as given, so addresses differing only in case are distinct accounts.
func (s *FitnessService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	taken, err := s.store.Users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}
	taken, err = s.store.Users.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost) // Hash the password
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Height:       in.Height,
		Weight:       in.Weight,
		Goal:         in.Goal,
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration
			taken, err := s.store.Users.EmailExists(ctx, in.Email)
			if err != nil {
				return nil, fmt.Errorf("recheck email: %w", err)
			}
			if taken {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
		"goal":     user.Goal,
	}).Info("User registered")
	return user, nil
}

// Authenticate returns the user whose email and password match. Unknown
// emails and wrong passwords fail with the same ErrInvalidCredentials.
func (s *FitnessService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.store.Users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials // Same error as an unknown email
	}
	return user, nil
}

// User loads a user by id
func (s *FitnessService) User(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// UpdateProgress sets the user's current weight and appends a progress row
// for today. Both writes commit together or not at all.
func (s *FitnessService) UpdateProgress(ctx context.Context, userID uint, weight float64, notes string) (*domain.UserProgress, error) {
	if !positive(weight) {
		return nil, ErrInvalidInput
	}
	progress := &domain.UserProgress{
		UserID: userID,
		Weight: weight,
		Notes:  notes,
		Date:   s.Today(),
	}
	// Atomic weight update and progress append
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Users.UpdateWeight(ctx, userID, weight); err != nil {
			return err
		}
		return tx.Progress.Create(ctx, progress)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"weight":  weight,
			"error":   err.Error(),
		}).Error("Progress update failed")
		return nil, fmt.Errorf("update progress: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"weight":  weight,
	}).Info("Progress updated")
	return progress, nil
}

// LoggedExercise is a stored exercise log with the name of what was done
type LoggedExercise struct {
	Log      domain.ExerciseLog
	Exercise domain.Exercise
}

// LogExercise records duration minutes of an exercise for today. The calorie
// burn is computed from the exercise's current rate and stored with the row.
func (s *FitnessService) LogExercise(ctx context.Context, userID, exerciseID uint, duration int) (*LoggedExercise, error) {
	if duration <= 0 {
		return nil, ErrInvalidInput
	}
	exercise, err := s.store.Catalog.FindExercise(ctx, exerciseID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	entry := domain.ExerciseLog{
		UserID:         userID,
		ExerciseID:     exercise.ID,
		Duration:       duration,
		CaloriesBurned: fitness.CaloriesBurned(exercise.CaloriesPerMinute, duration), // Fixed at insert
		Date:           s.Today(),
	}
	if err := s.store.Logs.CreateExerciseLog(ctx, &entry); err != nil {
		return nil, fmt.Errorf("create exercise log: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"exercise":        exercise.Name,
		"duration":        duration,
		"calories_burned": entry.CaloriesBurned,
	}).Info("Exercise logged")
	return &LoggedExercise{Log: entry, Exercise: *exercise}, nil
}

// LoggedMeal is a stored meal log with the meal it refers to
type LoggedMeal struct {
	Log  domain.MealLog
	Meal domain.Meal
}

// LogMeal records quantity servings of a meal for today
func (s *FitnessService) LogMeal(ctx context.Context, userID, mealID uint, quantity float64) (*LoggedMeal, error) {
	if !positive(quantity) {
		return nil, ErrInvalidInput
	}
	meal, err := s.store.Catalog.FindMeal(ctx, mealID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find meal: %w", err)
	}
	entry := domain.MealLog{
		UserID:   userID,
		MealID:   meal.ID,
		Quantity: quantity,
		Calories: fitness.CaloriesConsumed(meal.Calories, quantity), // Fixed at insert
		Date:     s.Today(),
	}
	if err := s.store.Logs.CreateMealLog(ctx, &entry); err != nil {
		return nil, fmt.Errorf("create meal log: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"meal":     meal.Name,
		"quantity": quantity,
		"calories": entry.Calories,
	}).Info("Meal logged")
	return &LoggedMeal{Log: entry, Meal: *meal}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
