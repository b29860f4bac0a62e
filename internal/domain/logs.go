package domain

import "time"

// UserProgress is one weight snapshot. Rows are only ever appended.
type UserProgress struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Weight float64   `gorm:"not null" json:"weight"`
	Notes  string    `gorm:"type:text" json:"notes"`
	Date   time.Time `gorm:"not null;index" json:"date"`
}

// TableName keeps the singular table name used by existing deployments
func (UserProgress) TableName() string { return "user_progress" }

// ExerciseLog records one workout. CaloriesBurned is fixed at insert time.
type ExerciseLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID         uint      `gorm:"not null;index" json:"user_id"`                          // Foreign key to User
	User           *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Only used for the FK constraint
	ExerciseID     uint      `gorm:"not null;index" json:"exercise_id"`                      // Foreign key to Exercise
	Exercise       *Exercise `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Duration       int       `gorm:"not null" json:"duration"`        // Minutes
	CaloriesBurned float64   `gorm:"not null" json:"calories_burned"` // Rate x duration
	Date           time.Time `gorm:"not null;index" json:"date"`      // Local midnight of the logged day
}

// MealLog records one meal eaten. Calories is fixed at insert time.
type MealLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID   uint      `gorm:"not null;index" json:"user_id"`                          // Foreign key to User
	User     *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Only used for the FK constraint
	MealID   uint      `gorm:"not null;index" json:"meal_id"`                          // Foreign key to Meal
	Meal     *Meal     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Quantity float64   `gorm:"not null" json:"quantity"` // Serving multiplier
	Calories float64   `gorm:"not null" json:"calories"` // Meal calories x quantity
	Date     time.Time `gorm:"not null;index" json:"date"`
}

// Models lists every table in migration order
func Models() []any {
	return []any{
		&User{}, &Exercise{}, &YogaPose{}, &Meal{},
		&UserProgress{}, &ExerciseLog{}, &MealLog{},
	}
}
