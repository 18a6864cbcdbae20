package service_test

import (
	"errors"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/service"
	"sep-workflow/internal/testinfra"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("CustomerManager", func() {
	var (
		db  *gorm.DB
		svc *service.Services
		s   *staff
	)

	BeforeEach(func() {
		db = testinfra.StartTestDatabase()
		svc = service.New(db, workflow.RecruitmentRules{AllowBypass: true})
		s = hireStaff(db)
	})

	AfterEach(func() {
		testinfra.StopTestDatabase(db)
	})

	It("gathers the projects of a returning customer, newest first", func() {
		first := publish(svc, s, db, "Wedding")
		second := publish(svc, s, db, "Anniversary")

		customers, err := svc.Customers.List(ctx)
		Expect(err).To(BeNil())
		Expect(customers).To(HaveLen(1))

		customer, err := svc.Customers.Get(ctx, customers[0].ID)
		Expect(err).To(BeNil())
		Expect(customer.Name).To(Equal("Alice"))
		Expect(customer.Projects).To(HaveLen(2))
		Expect(customer.Projects[0].ID).To(Equal(second.ID))
		Expect(customer.Projects[1].ID).To(Equal(first.ID))
	})

	It("reports unknown customers", func() {
		_, err := svc.Customers.Get(ctx, 999)
		Expect(errors.Is(err, bizerror.ErrNotFound)).To(BeTrue())
	})
})
