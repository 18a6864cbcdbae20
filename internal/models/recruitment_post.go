package models

import (
	"sep-workflow/internal/workflow"

	"gorm.io/gorm"
)

type RecruitmentPost struct {
	gorm.Model
	ContractType         ContractType               `gorm:"type:varchar(10);not null" json:"contract_type"`
	RequestingDepartment Department                 `gorm:"type:varchar(10);not null" json:"requesting_department"`
	MinYearsExperience   int                        `gorm:"not null;default:0" json:"min_years_experience"`
	Title                string                     `gorm:"size:100;not null" json:"title"`
	Description          string                     `gorm:"type:text" json:"description"`
	RequestedByID        *uint                      `gorm:"index" json:"requested_by_id"`
	Status               workflow.RecruitmentStatus `gorm:"not null;index" json:"status"`
}
