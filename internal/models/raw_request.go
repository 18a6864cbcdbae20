package models

import "gorm.io/gorm"

// RawRequest is what a customer submits before any project exists.
type RawRequest struct {
	gorm.Model
	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:255;not null" json:"email"`
	Phone       string `gorm:"size:20;not null" json:"phone"`
	Address     string `gorm:"size:200;not null" json:"address"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Available   int64  `gorm:"not null" json:"available"`

	Project *Project `gorm:"foreignKey:InitialRequestID" json:"project,omitempty"`
}
