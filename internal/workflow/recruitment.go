package workflow

import "sep-workflow/internal/bizerror"

type recruitmentEdge struct {
	from   RecruitmentStatus
	action Action
}

var recruitmentTransitions = map[recruitmentEdge]RecruitmentStatus{
	{RecruitmentPending, ActionStartCampaign}:    RecruitmentOngoing,
	{RecruitmentOngoing, ActionCompleteCampaign}: RecruitmentCompleted,
}

// RecruitmentRules carries the switch for the pending -> completed shortcut. With
// AllowBypass set, complete_campaign is accepted on a campaign that was never started.
type RecruitmentRules struct {
	AllowBypass bool
}

func (r RecruitmentRules) Next(current RecruitmentStatus, action Action, role Role) (RecruitmentStatus, error) {
	if err := Authorize(role, action); err != nil {
		return RecruitmentStatus{}, err
	}
	if next, ok := recruitmentTransitions[recruitmentEdge{from: current, action: action}]; ok {
		return next, nil
	}
	if r.AllowBypass && current == RecruitmentPending && action == ActionCompleteCampaign {
		return RecruitmentCompleted, nil
	}
	return RecruitmentStatus{}, &bizerror.IllegalTransitionError{Entity: "recruitment post", From: current.String(), Action: string(action)}
}
