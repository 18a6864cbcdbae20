package workflow_test

import (
	"errors"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("NextFinancialStatus", func() {
	It("approves or rejects a pending request", func() {
		next, err := workflow.NextFinancialStatus(workflow.FinancialPending, true, workflow.RoleFinancialManager)
		Expect(err).To(BeNil())
		Expect(next).To(Equal(workflow.FinancialApproved))

		next, err = workflow.NextFinancialStatus(workflow.FinancialPending, false, workflow.RoleFinancialManager)
		Expect(err).To(BeNil())
		Expect(next).To(Equal(workflow.FinancialRejected))
	})

	It("never re-opens a decided request", func() {
		for _, decided := range []workflow.FinancialStatus{workflow.FinancialApproved, workflow.FinancialRejected} {
			for _, approve := range []bool{true, false} {
				_, err := workflow.NextFinancialStatus(decided, approve, workflow.RoleFinancialManager)
				Expect(errors.Is(err, bizerror.ErrIllegalTransition)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("request has already been " + decided.String()))
			}
		}
	})

	It("is reserved to the financial manager", func() {
		for _, role := range allRoles {
			if role == workflow.RoleFinancialManager {
				continue
			}
			_, err := workflow.NextFinancialStatus(workflow.FinancialPending, true, role)
			Expect(errors.Is(err, bizerror.ErrForbidden)).To(BeTrue(), string(role))
		}
	})
})
