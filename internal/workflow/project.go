package workflow

import "sep-workflow/internal/bizerror"

type projectEdge struct {
	from   ProjectStatus
	action Action
}

// projectTransitions is the complete lifecycle graph. The zero ProjectStatus stands for
// "no project exists yet".
var projectTransitions = map[projectEdge]ProjectStatus{
	{ProjectStatus{}, ActionSaveDraft}:      ProjectDraft,
	{ProjectStatus{}, ActionPublish}:        ProjectPending,
	{ProjectDraft, ActionSaveDraft}:         ProjectDraft,
	{ProjectDraft, ActionPublish}:           ProjectPending,
	{ProjectPending, ActionCSApprove}:       ProjectCSApproved,
	{ProjectPending, ActionCSReject}:        ProjectCSRejected,
	{ProjectCSApproved, ActionFinSaveDraft}: ProjectCSApproved,
	{ProjectCSApproved, ActionFinPublish}:   ProjectFinReview,
	{ProjectFinReview, ActionAdminApprove}:  ProjectAdminApproved,
	{ProjectFinReview, ActionAdminReject}:   ProjectAdminRejected,
	{ProjectAdminApproved, ActionComplete}:  ProjectCompleted,
}

// NextProjectStatus is the only way to obtain a new project status. It fails with an
// AuthorizationError when the role lacks the action and with an IllegalTransitionError
// when the action does not leave the current status.
func NextProjectStatus(current ProjectStatus, action Action, role Role) (ProjectStatus, error) {
	if err := Authorize(role, action); err != nil {
		return ProjectStatus{}, err
	}
	next, ok := projectTransitions[projectEdge{from: current, action: action}]
	if !ok {
		return ProjectStatus{}, &bizerror.IllegalTransitionError{Entity: "project", From: current.String(), Action: string(action)}
	}
	return next, nil
}

// Decision maps an approve/reject flag to the action of the given review stage.
func Decision(approve bool, approveAction, rejectAction Action) Action {
	if approve {
		return approveAction
	}
	return rejectAction
}

// Staffed reports whether task dispatch and financial requests are open on a project.
func Staffed(s ProjectStatus) bool {
	return s == ProjectAdminApproved
}
