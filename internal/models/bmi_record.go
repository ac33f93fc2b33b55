package models

import "time"

// BmiRecord is one completed BMI assessment. Records are never updated.
type BmiRecord struct {
	ID              string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          *string   `gorm:"size:64;index" json:"userId"`
	Height          float64   `gorm:"not null" json:"height"`
	Weight          float64   `gorm:"not null" json:"weight"`
	BMI             float64   `gorm:"column:bmi;not null" json:"bmi"`
	Category        string    `gorm:"size:32;not null" json:"category"`
	Recommendations []string  `gorm:"serializer:json" json:"recommendations"`
	CreatedAt       time.Time `json:"createdAt"`
}
