package domain

import "time"

// Goal is what the user is training towards.
type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"     // Caloric deficit
	GoalGainWeight     Goal = "gain_weight"     // Caloric surplus
	GoalMaintainWeight Goal = "maintain_weight" // Hold current weight
)

// Valid reports whether g is one of the known goals
func (g Goal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalGainWeight, GoalMaintainWeight:
		return true
	}
	return false
}

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                         // Primary key
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"` // Unique username
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`   // Unique email, stored as given
	PasswordHash string    `gorm:"size:120;not null" json:"-"`                   // Bcrypt hash, never plaintext
	Height       float64   `gorm:"not null" json:"height"`                       // Height in centimeters
	Weight       float64   `gorm:"not null" json:"weight"`                       // Current weight in kilograms
	Goal         Goal      `gorm:"size:50;not null" json:"goal"`                 // lose_weight, gain_weight, maintain_weight
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`             // Registration time
}
