package domain

// ExerciseCategory groups exercises in the catalog.
type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "strength"
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryFlexibility ExerciseCategory = "flexibility"
	CategoryYoga        ExerciseCategory = "yoga"
	CategoryBodyweight  ExerciseCategory = "bodyweight"
)

// Difficulty of a yoga pose.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// MealCategory is the time of day a meal belongs to.
type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnack     MealCategory = "snack"
)

// Exercise Model (reference data, seeded once)
type Exercise struct {
	ID                uint             `gorm:"primaryKey" json:"id"`                                       // Primary key
	Name              string           `gorm:"size:100;not null" json:"name"`                              // Display name
	Category          ExerciseCategory `gorm:"size:50;not null;index" json:"category"`                     // strength, cardio, ...
	Description       string           `gorm:"type:text" json:"description"`                               // Short description
	CaloriesPerMinute float64          `gorm:"not null" json:"calories_per_minute"`                        // Burn rate
	ImageURL          string           `gorm:"size:200;default:exercise_placeholder.jpg" json:"image_url"` // Static image name
}

// YogaPose Model (reference data, seeded once)
type YogaPose struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Benefits       string     `gorm:"type:text" json:"benefits"`
	HoldTime       int        `json:"hold_time"` // Seconds
	CaloriesBurned float64    `json:"calories_burned"`
	Difficulty     Difficulty `gorm:"size:20" json:"difficulty"`
	ImageURL       string     `gorm:"size:200;default:yoga_placeholder.jpg" json:"image_url"`
}

// Meal Model (reference data, seeded once)
type Meal struct {
	ID           uint         `gorm:"primaryKey" json:"id"`                   // Primary key
	Name         string       `gorm:"size:100;not null" json:"name"`          // Display name
	Category     MealCategory `gorm:"size:50;not null;index" json:"category"` // breakfast, lunch, dinner, snack
	Calories     float64      `gorm:"not null" json:"calories"`               // Per serving
	Protein      float64      `gorm:"default:0" json:"protein"`               // Grams
	Carbs        float64      `gorm:"default:0" json:"carbs"`                 // Grams
	Fats         float64      `gorm:"default:0" json:"fats"`                  // Grams
	IsVegetarian bool         `gorm:"default:false" json:"is_vegetarian"`     // Vegetarian flag
}
