package models

import (
	"time"

	"sep-workflow/internal/workflow"

	"gorm.io/gorm"
)

type Project struct {
	gorm.Model
	ClientID *uint     `gorm:"index" json:"client_id"`
	Client   *Customer `gorm:"constraint:OnDelete:CASCADE" json:"client,omitempty"`

	InitialRequestID *uint       `gorm:"uniqueIndex" json:"initial_request_id"`
	InitialRequest   *RawRequest `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title           string     `gorm:"size:100;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	EstimatedBudget *int64     `json:"estimated_budget"`
	FromDate        *time.Time `gorm:"type:date" json:"from_date"`
	ToDate          *time.Time `gorm:"type:date" json:"to_date"`
	ExpectedGuests  *int       `json:"expected_guests"`

	Status workflow.ProjectStatus `gorm:"not null;index" json:"status"`

	FinancialFeedback      string `gorm:"type:text" json:"financial_feedback"`
	FinancialFeedbackDraft bool   `gorm:"not null;default:false" json:"financial_feedback_draft"`

	MeetingID *uint    `gorm:"uniqueIndex" json:"meeting_id"`
	Meeting   *Meeting `gorm:"constraint:OnDelete:SET NULL" json:"meeting,omitempty"`

	CreatedByID *uint     `gorm:"index" json:"created_by_id"`
	CreatedBy   *Employee `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	Tasks             []Task             `gorm:"constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	FinancialRequests []FinancialRequest `gorm:"constraint:OnDelete:CASCADE" json:"financial_requests,omitempty"`
}

// Meeting is the initial client meeting of a project.
type Meeting struct {
	gorm.Model
	Date    time.Time  `gorm:"type:date;not null" json:"date"`
	Time    string     `gorm:"size:5;not null" json:"time"` // HH:MM
	Members []Employee `gorm:"many2many:meeting_members" json:"members,omitempty"`
}
