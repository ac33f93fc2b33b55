package models

import "time"

type Meal struct {
	Name     string `json:"name"`
	Food     string `json:"food"`
	Calories int    `json:"calories"`
}

type DietPlan struct {
	ID            string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        *string   `gorm:"size:64;index" json:"userId"`
	Goal          string    `gorm:"size:64;not null" json:"goal"`
	DietType      *string   `gorm:"size:64" json:"dietType"`
	Meals         []Meal    `gorm:"serializer:json" json:"meals"`
	TotalCalories *int      `json:"totalCalories"`
	CreatedAt     time.Time `json:"createdAt"`
}
