package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Username  string    `gorm:"size:100;not null;index" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserProfile is the cached subset of a user's attributes. Nil fields are unset.
type UserProfile struct {
	ID                  string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID              string    `gorm:"size:64;not null;index" json:"userId"`
	Age                 *int      `json:"age"`
	Gender              *string   `gorm:"size:32" json:"gender"`
	Height              *float64  `json:"height"`
	Weight              *float64  `json:"weight"`
	ActivityLevel       *string   `gorm:"size:64" json:"activityLevel"`
	FitnessGoals        []string  `gorm:"serializer:json" json:"fitnessGoals"`
	DietaryRestrictions []string  `gorm:"serializer:json" json:"dietaryRestrictions"`
	Allergies           *string   `gorm:"type:text" json:"allergies"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
