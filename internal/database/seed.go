package database

import (
	"fmt"

	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedEmployee struct {
	Username  string
	FirstName string
	LastName  string
	Role      workflow.Role
}

type seedTeam struct {
	Name    string
	Manager string
	Members []string
	Chief   string
}

// demo staff, one or more per role
var staff = []seedEmployee{
	{"cse1", "Carmen", "Santa-Emeritus", workflow.RoleCustomerServiceEmployee},
	{"cse2", "Cedric", "Saladin-Ernandez", workflow.RoleCustomerServiceEmployee},
	{"csm1", "Carlos", "Sitaro-Meritus", workflow.RoleCustomerServiceManager},
	{"fim1", "Fernando", "Iniesta-Malan", workflow.RoleFinancialManager},
	{"adm1", "Amanda", "Dministrador", workflow.RoleAdminManager},
	{"pdm1", "Paula", "Duarte-Moreno", workflow.RoleProductionManager},
	{"pde1", "Pedro", "Delgado-Esteban", workflow.RoleProductionEmployee},
	{"sdm1", "Sofia", "Dominguez-Mar", workflow.RoleServiceManager},
	{"cook1", "Cristian", "Ortega", workflow.RoleServiceEmployee},
	{"chef1", "Chloe", "Hernandez", workflow.RoleServiceEmployee},
	{"hrm1", "Hector", "Ramos-Muller", workflow.RoleHRManager},
}

var teams = []seedTeam{
	{Name: "Kitchen", Manager: "sdm1", Members: []string{"cook1", "chef1"}, Chief: "chef1"},
	{Name: "Production", Manager: "pdm1", Members: []string{"pde1"}, Chief: "pde1"},
}

// Seed creates the demo staff and teams. Existing rows are left untouched.
func Seed(db *gorm.DB, password string) error {
	ids := map[string]uint{}
	for _, s := range staff {
		var existing models.Employee
		err := db.Where("username = ?", s.Username).Limit(1).Find(&existing).Error
		if err != nil {
			return fmt.Errorf("check seed employee %s: %w", s.Username, err)
		}
		if existing.ID != 0 {
			ids[s.Username] = existing.ID
			continue
		}

		employee, err := models.NewEmployee(s.Username, password, s.Role)
		if err != nil {
			return fmt.Errorf("build seed employee %s: %w", s.Username, err)
		}
		employee.FirstName = s.FirstName
		employee.LastName = s.LastName
		employee.Email = s.Username + "@sep.se"
		if err := db.Create(employee).Error; err != nil {
			return fmt.Errorf("create seed employee %s: %w", s.Username, err)
		}
		ids[s.Username] = employee.ID
		logrus.WithField("role", s.Role).Infof("created seed employee %s", s.Username)
	}

	for _, t := range teams {
		var count int64
		if err := db.Model(&models.Team{}).Where("name = ?", t.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("check seed team %s: %w", t.Name, err)
		}
		if count > 0 {
			continue
		}

		team := models.Team{Name: t.Name, ManagerID: ids[t.Manager]}
		for _, username := range t.Members {
			team.Members = append(team.Members, models.TeamMember{EmployeeID: ids[username], IsChief: username == t.Chief})
		}
		if err := db.Create(&team).Error; err != nil {
			return fmt.Errorf("create seed team %s: %w", t.Name, err)
		}
		logrus.Infof("created seed team %s managed by %s", t.Name, t.Manager)
	}
	return nil
}
