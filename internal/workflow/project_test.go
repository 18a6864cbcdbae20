package workflow_test

import (
	"errors"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/workflow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var (
	allRoles = []workflow.Role{
		workflow.RoleCustomerServiceEmployee, workflow.RoleCustomerServiceManager, workflow.RoleFinancialManager,
		workflow.RoleAdminManager, workflow.RoleProductionManager, workflow.RoleProductionEmployee,
		workflow.RoleServiceManager, workflow.RoleServiceEmployee, workflow.RoleHRManager,
	}
	projectStatuses = []workflow.ProjectStatus{
		{}, workflow.ProjectDraft, workflow.ProjectPending, workflow.ProjectCSApproved, workflow.ProjectCSRejected,
		workflow.ProjectFinReview, workflow.ProjectAdminApproved, workflow.ProjectAdminRejected, workflow.ProjectCompleted,
	}
	projectActions = []workflow.Action{
		workflow.ActionSaveDraft, workflow.ActionPublish, workflow.ActionScheduleMeeting,
		workflow.ActionCSApprove, workflow.ActionCSReject, workflow.ActionFinSaveDraft, workflow.ActionFinPublish,
		workflow.ActionAdminApprove, workflow.ActionAdminReject, workflow.ActionComplete,
		workflow.ActionAssignTask, workflow.ActionCompleteTask,
	}
)

type edge struct {
	from   workflow.ProjectStatus
	action workflow.Action
}

var lifecycle = map[edge]workflow.ProjectStatus{
	{workflow.ProjectStatus{}, workflow.ActionSaveDraft}:      workflow.ProjectDraft,
	{workflow.ProjectStatus{}, workflow.ActionPublish}:        workflow.ProjectPending,
	{workflow.ProjectDraft, workflow.ActionSaveDraft}:         workflow.ProjectDraft,
	{workflow.ProjectDraft, workflow.ActionPublish}:           workflow.ProjectPending,
	{workflow.ProjectPending, workflow.ActionCSApprove}:       workflow.ProjectCSApproved,
	{workflow.ProjectPending, workflow.ActionCSReject}:        workflow.ProjectCSRejected,
	{workflow.ProjectCSApproved, workflow.ActionFinSaveDraft}: workflow.ProjectCSApproved,
	{workflow.ProjectCSApproved, workflow.ActionFinPublish}:   workflow.ProjectFinReview,
	{workflow.ProjectFinReview, workflow.ActionAdminApprove}:  workflow.ProjectAdminApproved,
	{workflow.ProjectFinReview, workflow.ActionAdminReject}:   workflow.ProjectAdminRejected,
	{workflow.ProjectAdminApproved, workflow.ActionComplete}:  workflow.ProjectCompleted,
}

var _ = Describe("NextProjectStatus", func() {
	It("accepts exactly the lifecycle edges, for exactly the roles holding the action", func() {
		for _, from := range projectStatuses {
			for _, action := range projectActions {
				for _, role := range allRoles {
					next, err := workflow.NextProjectStatus(from, action, role)
					to, inTable := lifecycle[edge{from, action}]

					switch {
					case !workflow.Can(role, action):
						var authErr *bizerror.AuthorizationError
						Expect(errors.As(err, &authErr)).To(BeTrue(), "%s %s %s", from, action, role)
						Expect(next.IsZero()).To(BeTrue())
					case inTable:
						Expect(err).To(BeNil(), "%s %s %s", from, action, role)
						Expect(next).To(Equal(to))
					default:
						Expect(errors.Is(err, bizerror.ErrIllegalTransition)).To(BeTrue(), "%s %s %s", from, action, role)
						Expect(next.IsZero()).To(BeTrue())
					}
				}
			}
		}
	})

	It("checks authorization before the transition table", func() {
		_, err := workflow.NextProjectStatus(workflow.ProjectCompleted, workflow.ActionCSApprove, workflow.RoleAdminManager)
		Expect(errors.Is(err, bizerror.ErrForbidden)).To(BeTrue())
		Expect(errors.Is(err, bizerror.ErrIllegalTransition)).To(BeFalse())
	})

	It("names the current status and the action when the pair is not in the table", func() {
		_, err := workflow.NextProjectStatus(workflow.ProjectCSApproved, workflow.ActionCSApprove, workflow.RoleCustomerServiceManager)
		var illegal *bizerror.IllegalTransitionError
		Expect(errors.As(err, &illegal)).To(BeTrue())
		Expect(illegal.From).To(Equal("cs_approved"))
		Expect(illegal.Action).To(Equal("cs_approve"))
		Expect(err.Error()).To(Equal(`project: action "cs_approve" is not allowed from status "cs_approved"`))
	})

	It("reports none for a project that does not exist yet", func() {
		_, err := workflow.NextProjectStatus(workflow.ProjectStatus{}, workflow.ActionScheduleMeeting, workflow.RoleCustomerServiceEmployee)
		Expect(err).To(MatchError(`project: action "schedule_meeting" is not allowed from status "none"`))
	})
})

var _ = Describe("Decision", func() {
	It("maps the approve flag to the stage actions", func() {
		Expect(workflow.Decision(true, workflow.ActionCSApprove, workflow.ActionCSReject)).To(Equal(workflow.ActionCSApprove))
		Expect(workflow.Decision(false, workflow.ActionCSApprove, workflow.ActionCSReject)).To(Equal(workflow.ActionCSReject))
	})
})

var _ = Describe("Staffed", func() {
	It("is only true once administration approved", func() {
		for _, s := range projectStatuses {
			Expect(workflow.Staffed(s)).To(Equal(s == workflow.ProjectAdminApproved), s.String())
		}
	})
})
