package testinfra

import (
	"time"

	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

// Password is the password of every employee built by CreateEmployee.
const Password = "1234"

func CreateEmployee(db *gorm.DB, username string, role workflow.Role) *models.Employee {
	employee, err := models.NewEmployee(username, Password, role)
	Expect(err).To(BeNil())
	Expect(db.Create(employee).Error).To(BeNil())
	return employee
}

func CreateTeam(db *gorm.DB, name string, manager *models.Employee, members ...*models.Employee) *models.Team {
	team := &models.Team{Name: name, ManagerID: manager.ID}
	for i, m := range members {
		team.Members = append(team.Members, models.TeamMember{EmployeeID: m.ID, IsChief: i == 0})
	}
	Expect(db.Create(team).Error).To(BeNil())
	return team
}

func CreateRawRequest(db *gorm.DB, title string, available int64) *models.RawRequest {
	request := &models.RawRequest{
		Name:        "Alice",
		Email:       "alice@example.com",
		Phone:       "0701234567",
		Address:     "Storgatan 1",
		Title:       title,
		Description: "A party for " + title,
		Available:   available,
	}
	Expect(db.Create(request).Error).To(BeNil())
	return request
}

// CreateProject stores a project directly in the given status, bypassing the workflow.
func CreateProject(db *gorm.DB, title string, status workflow.ProjectStatus) *models.Project {
	project := &models.Project{Title: title, Status: status}
	Expect(db.Create(project).Error).To(BeNil())
	return project
}

func ReloadProject(db *gorm.DB, id uint) *models.Project {
	var project models.Project
	Expect(db.First(&project, id).Error).To(BeNil())
	return &project
}

func Tomorrow() *time.Time {
	t := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	return &t
}

func Bool(b bool) *bool {
	return &b
}
