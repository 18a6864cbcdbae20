package models

import (
	"sep-workflow/internal/workflow"

	"gorm.io/gorm"
)

// FinancialRequest asks the financial manager for extra budget on a staffed project.
type FinancialRequest struct {
	gorm.Model
	ProjectID            uint                     `gorm:"not null;index" json:"project_id"`
	Project              *Project                 `json:"project,omitempty"`
	RequestingDepartment Department               `gorm:"type:varchar(10);not null" json:"requesting_department"`
	Amount               int64                    `gorm:"not null" json:"amount"`
	Reason               string                   `gorm:"type:text;not null" json:"reason"`
	RequestedByID        *uint                    `gorm:"index" json:"requested_by_id"`
	Status               workflow.FinancialStatus `gorm:"not null;index" json:"status"`
}
