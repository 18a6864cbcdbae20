package models_test

import (
	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Employee", func() {
	Describe("NewEmployee", func() {
		It("hashes the password", func() {
			employee, err := models.NewEmployee("  anna ", "secret", workflow.RoleHRManager)
			Expect(err).To(BeNil())
			Expect(employee.Username).To(Equal("anna"))
			Expect(employee.PasswordHash).ToNot(Equal("secret"))
			Expect(employee.CheckPassword("secret")).To(BeTrue())
			Expect(employee.CheckPassword("Secret")).To(BeFalse())
		})

		It("rejects short usernames and passwords and unknown roles", func() {
			_, err := models.NewEmployee("an", "secret", workflow.RoleHRManager)
			Expect(err).To(BeAssignableToTypeOf(&bizerror.ValidationError{}))
			Expect(err.(*bizerror.ValidationError).Field).To(Equal("username"))

			_, err = models.NewEmployee("anna", "123", workflow.RoleHRManager)
			Expect(err.(*bizerror.ValidationError).Field).To(Equal("password"))

			_, err = models.NewEmployee("anna", "secret", workflow.Role("CEO"))
			Expect(err.(*bizerror.ValidationError).Field).To(Equal("role"))
		})
	})

	It("replaces the password", func() {
		employee, err := models.NewEmployee("anna", "secret", workflow.DefaultRole)
		Expect(err).To(BeNil())

		Expect(employee.SetPassword("abc")).ToNot(Succeed())
		Expect(employee.CheckPassword("secret")).To(BeTrue())

		Expect(employee.SetPassword("better")).To(Succeed())
		Expect(employee.CheckPassword("better")).To(BeTrue())
		Expect(employee.CheckPassword("secret")).To(BeFalse())
	})

	It("builds the display name from what it has", func() {
		Expect(models.Employee{Username: "anna"}.FullName()).To(Equal("anna"))
		Expect(models.Employee{Username: "anna", FirstName: "Anna"}.FullName()).To(Equal("Anna"))
		Expect(models.Employee{Username: "anna", LastName: "Berg"}.FullName()).To(Equal("Berg"))
		Expect(models.Employee{Username: "anna", FirstName: "Anna", LastName: "Berg"}.FullName()).To(Equal("Anna Berg"))
	})
})
