package models

import (
	"time"

	"sep-workflow/internal/workflow"

	"gorm.io/gorm"
)

type Task struct {
	gorm.Model
	ProjectID uint     `gorm:"not null;index" json:"project_id"`
	Project   *Project `json:"project,omitempty"`
	TeamID    uint     `gorm:"not null;index" json:"team_id"`

	AssigneeID uint      `gorm:"not null;index" json:"assignee_id"`
	Assignee   *Employee `gorm:"constraint:OnDelete:CASCADE" json:"assignee,omitempty"`
	SenderID   *uint     `gorm:"index" json:"sender_id"`
	Sender     *Employee `gorm:"constraint:OnDelete:SET NULL" json:"sender,omitempty"`

	Subject     string            `gorm:"size:100;not null" json:"subject"`
	Priority    workflow.Priority `gorm:"not null;default:0" json:"priority"`
	Description string            `gorm:"type:text" json:"description"`
	DueDate     time.Time         `gorm:"type:date;not null;index" json:"due_date"`
	Completed   bool              `gorm:"not null;default:false;index" json:"completed"`
}
