package database_test

import (
	"sep-workflow/internal/config"
	"sep-workflow/internal/database"
	"sep-workflow/internal/models"
	"sep-workflow/internal/testinfra"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Open", func() {
	It("connects to sqlite and migrates the schema", func() {
		db, err := database.Open(&config.Config{DBDriver: "sqlite", DBDSN: "file:open_test?mode=memory&cache=shared"})
		Expect(err).To(BeNil())
		defer database.Close(db)

		Expect(database.Migrate(db)).To(Succeed())
		Expect(db.Migrator().HasTable(&models.Project{})).To(BeTrue())
		Expect(db.Migrator().HasTable(&models.RecruitmentPost{})).To(BeTrue())
	})
})

var _ = Describe("Seed", func() {
	var db *gorm.DB

	BeforeEach(func() {
		db = testinfra.StartTestDatabase()
	})

	AfterEach(func() {
		testinfra.StopTestDatabase(db)
	})

	count := func(model interface{}) int64 {
		var n int64
		Expect(db.Model(model).Count(&n).Error).To(Succeed())
		return n
	}

	It("creates one or more employees per role and the two teams", func() {
		Expect(database.Seed(db, "1234")).To(Succeed())
		Expect(count(&models.Employee{})).To(Equal(int64(11)))
		Expect(count(&models.Team{})).To(Equal(int64(2)))

		for _, role := range []workflow.Role{
			workflow.RoleCustomerServiceEmployee, workflow.RoleCustomerServiceManager, workflow.RoleFinancialManager,
			workflow.RoleAdminManager, workflow.RoleProductionManager, workflow.RoleProductionEmployee,
			workflow.RoleServiceManager, workflow.RoleServiceEmployee, workflow.RoleHRManager,
		} {
			var n int64
			Expect(db.Model(&models.Employee{}).Where("role = ?", role).Count(&n).Error).To(Succeed())
			Expect(n).To(BeNumerically(">=", 1), string(role))
		}

		var kitchen models.Team
		Expect(db.Preload("Members.Employee").Preload("Manager").Where("name = ?", "Kitchen").First(&kitchen).Error).To(Succeed())
		Expect(kitchen.Manager.Username).To(Equal("sdm1"))
		Expect(kitchen.Members).To(HaveLen(2))
		for _, m := range kitchen.Members {
			Expect(m.IsChief).To(Equal(m.Employee.Username == "chef1"))
		}
	})

	It("hashes the shared password", func() {
		Expect(database.Seed(db, "1234")).To(Succeed())
		var employee models.Employee
		Expect(db.Where("username = ?", "adm1").First(&employee).Error).To(Succeed())
		Expect(employee.PasswordHash).ToNot(Equal("1234"))
		Expect(employee.CheckPassword("1234")).To(BeTrue())
		Expect(employee.Email).To(Equal("adm1@sep.se"))
	})

	It("is idempotent", func() {
		Expect(database.Seed(db, "1234")).To(Succeed())
		Expect(database.Seed(db, "5678")).To(Succeed())
		Expect(count(&models.Employee{})).To(Equal(int64(11)))
		Expect(count(&models.Team{})).To(Equal(int64(2)))
		Expect(count(&models.TeamMember{})).To(Equal(int64(3)))

		var employee models.Employee
		Expect(db.Where("username = ?", "cse1").First(&employee).Error).To(Succeed())
		Expect(employee.CheckPassword("1234")).To(BeTrue())
	})
})
