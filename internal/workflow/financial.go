package workflow

import "sep-workflow/internal/bizerror"

// NextFinancialStatus decides a pending financial request. Decided requests cannot be re-opened.
func NextFinancialStatus(current FinancialStatus, approve bool, role Role) (FinancialStatus, error) {
	if err := Authorize(role, ActionDecideFinancialRequest); err != nil {
		return FinancialStatus{}, err
	}
	if current != FinancialPending {
		return FinancialStatus{}, &bizerror.IllegalTransitionError{
			Entity: "financial request",
			From:   current.String(),
			Action: string(ActionDecideFinancialRequest),
			Reason: "request has already been " + current.String(),
		}
	}
	if approve {
		return FinancialApproved, nil
	}
	return FinancialRejected, nil
}
