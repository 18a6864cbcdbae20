package models

import "gorm.io/gorm"

// Team is managed by exactly one employee, who does not have to be a member.
type Team struct {
	gorm.Model
	Name      string   `gorm:"size:100;not null" json:"name"`
	ManagerID uint     `gorm:"not null;index" json:"manager_id"`
	Manager   Employee `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Members []TeamMember `json:"members,omitempty"`
}

type TeamMember struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	TeamID     uint     `gorm:"not null;uniqueIndex:idx_team_member" json:"team_id"`
	EmployeeID uint     `gorm:"not null;uniqueIndex:idx_team_member" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnDelete:CASCADE" json:"employee"`
	IsChief    bool     `gorm:"not null;default:false" json:"is_chief"`
}

// HasMember reports whether the employee is currently part of the team. Members must be preloaded.
func (t Team) HasMember(employeeID uint) bool {
	for _, m := range t.Members {
		if m.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
