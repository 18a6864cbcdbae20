package workflow_test

import (
	"encoding/json"

	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status values", func() {
	It("parse back from their names", func() {
		for _, s := range projectStatuses[1:] {
			parsed, err := workflow.ParseProjectStatus(s.String())
			Expect(err).To(BeNil())
			Expect(parsed).To(Equal(s))
		}
		_, err := workflow.ParseProjectStatus("archived")
		Expect(err).To(HaveOccurred())
	})

	It("are only ever produced from the declared set", func() {
		for _, from := range projectStatuses {
			for _, action := range projectActions {
				for _, role := range allRoles {
					next, err := workflow.NextProjectStatus(from, action, role)
					if err != nil {
						continue
					}
					parsed, err := workflow.ParseProjectStatus(next.String())
					Expect(err).To(BeNil())
					Expect(parsed).To(Equal(next))
				}
			}
		}
		Expect(workflow.ProjectStatus{}.IsZero()).To(BeTrue())
		_, err := workflow.ParseProjectStatus("")
		Expect(err).To(HaveOccurred())
	})

	It("scan from the database and refuse unknown values", func() {
		var s workflow.ProjectStatus
		Expect(s.Scan([]byte("fin_review"))).To(Succeed())
		Expect(s).To(Equal(workflow.ProjectFinReview))
		Expect(s.Scan("bogus")).To(HaveOccurred())
		Expect(s.Scan(42)).To(HaveOccurred())

		var f workflow.FinancialStatus
		Expect(f.Scan("approved")).To(Succeed())
		Expect(f).To(Equal(workflow.FinancialApproved))
		Expect(f.Scan("ongoing")).To(HaveOccurred())

		var r workflow.RecruitmentStatus
		Expect(r.Scan("ongoing")).To(Succeed())
		Expect(r).To(Equal(workflow.RecruitmentOngoing))
		Expect(r.Scan("approved")).To(HaveOccurred())
	})

	It("store the zero value as NULL", func() {
		v, err := workflow.ProjectStatus{}.Value()
		Expect(err).To(BeNil())
		Expect(v).To(BeNil())

		v, err = workflow.ProjectPending.Value()
		Expect(err).To(BeNil())
		Expect(v).To(Equal("pending"))
	})

	It("marshal to their names", func() {
		body, err := json.Marshal(map[string]interface{}{"status": workflow.ProjectCSApproved, "campaign": workflow.RecruitmentPending})
		Expect(err).To(BeNil())
		Expect(body).To(MatchJSON(`{"status":"cs_approved","campaign":"pending"}`))
	})

	It("know the terminal project states", func() {
		Expect(workflow.ProjectCSRejected.Terminal()).To(BeTrue())
		Expect(workflow.ProjectAdminRejected.Terminal()).To(BeTrue())
		Expect(workflow.ProjectCompleted.Terminal()).To(BeTrue())
		Expect(workflow.ProjectAdminApproved.Terminal()).To(BeFalse())
	})
})

var _ = Describe("Priority", func() {
	It("accepts LOW to CRITICAL only", func() {
		Expect(workflow.Priority(-1).Valid()).To(BeFalse())
		Expect(workflow.PriorityLow.Valid()).To(BeTrue())
		Expect(workflow.PriorityCritical.Valid()).To(BeTrue())
		Expect(workflow.Priority(4).Valid()).To(BeFalse())
		Expect(workflow.PriorityHigh.String()).To(Equal("HIGH"))
		Expect(workflow.Priority(9).String()).To(Equal("INVALID"))
	})
})
