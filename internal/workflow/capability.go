package workflow

import "sep-workflow/internal/bizerror"

type Action string

const (
	// project lifecycle
	ActionSaveDraft       Action = "save_draft"
	ActionPublish         Action = "publish"
	ActionScheduleMeeting Action = "schedule_meeting"
	ActionCSApprove       Action = "cs_approve"
	ActionCSReject        Action = "cs_reject"
	ActionFinSaveDraft    Action = "fin_save_draft"
	ActionFinPublish      Action = "fin_publish"
	ActionAdminApprove    Action = "admin_approve"
	ActionAdminReject     Action = "admin_reject"
	ActionComplete        Action = "complete"

	// task dispatch
	ActionAssignTask   Action = "assign_task"
	ActionCompleteTask Action = "complete_task"

	// financial requests
	ActionCreateFinancialRequest Action = "create_financial_request"
	ActionDecideFinancialRequest Action = "decide_financial_request"

	// recruitment
	ActionCreateRecruitmentPost Action = "create_recruitment_post"
	ActionStartCampaign         Action = "start_campaign"
	ActionCompleteCampaign      Action = "complete_campaign"
)

var capabilities = map[Role]map[Action]struct{}{
	RoleCustomerServiceEmployee: actions(ActionSaveDraft, ActionPublish, ActionScheduleMeeting),
	RoleCustomerServiceManager:  actions(ActionCSApprove, ActionCSReject),
	RoleFinancialManager:        actions(ActionFinSaveDraft, ActionFinPublish, ActionDecideFinancialRequest),
	RoleAdminManager:            actions(ActionAdminApprove, ActionAdminReject, ActionComplete),
	RoleProductionManager: actions(ActionAssignTask, ActionCompleteTask,
		ActionCreateFinancialRequest, ActionCreateRecruitmentPost),
	RoleServiceManager: actions(ActionAssignTask, ActionCompleteTask,
		ActionCreateFinancialRequest, ActionCreateRecruitmentPost),
	RoleProductionEmployee: actions(ActionCompleteTask),
	RoleServiceEmployee:    actions(ActionCompleteTask),
	RoleHRManager:          actions(ActionStartCampaign, ActionCompleteCampaign),
}

func actions(list ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(list))
	for _, a := range list {
		set[a] = struct{}{}
	}
	return set
}

// Can reports whether the role is permitted to invoke the action.
func Can(role Role, action Action) bool {
	_, ok := capabilities[role][action]
	return ok
}

// Authorize is Can in error form.
func Authorize(role Role, action Action) error {
	if !Can(role, action) {
		return &bizerror.AuthorizationError{Role: string(role), Action: string(action)}
	}
	return nil
}

// RolesFor lists the roles allowed to invoke any of the given actions, in a stable order.
func RolesFor(list ...Action) []Role {
	var roles []Role
	for _, r := range allRoles {
		for _, a := range list {
			if Can(r, a) {
				roles = append(roles, r)
				break
			}
		}
	}
	return roles
}

var allRoles = []Role{
	RoleCustomerServiceEmployee, RoleCustomerServiceManager, RoleFinancialManager, RoleAdminManager,
	RoleProductionManager, RoleProductionEmployee, RoleServiceManager, RoleServiceEmployee, RoleHRManager,
}
