package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name    string `gorm:"size:100;not null;index:idx_customer_contact" json:"name"`
	Email   string `gorm:"size:255;not null;index:idx_customer_contact" json:"email"`
	Phone   string `gorm:"size:20;not null;index:idx_customer_contact" json:"phone"`
	Address string `gorm:"type:text;not null" json:"address"`

	Projects []Project `gorm:"foreignKey:ClientID" json:"projects,omitempty"`
}
