package bizerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrTooManyRequests   = errors.New("too many requests")
)

// ErrorBody is the JSON payload written for every failed request.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BizError is implemented by errors that know how they should be reported to the caller.
type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data interface{}
}

// ValidationError reports malformed or out-of-range input. Nothing has been written when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func Invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return "validation failed: " + e.Field + ": " + e.Message
}

func (e *ValidationError) Respond() *BizErrorDetail {
	return &BizErrorDetail{
		Status:  http.StatusBadRequest,
		Code:    "common.validation_failed",
		Message: e.Message,
		Data:    map[string]string{"field": e.Field},
	}
}

// NotFoundError names the entity that could not be loaded.
type NotFoundError struct {
	Entity string
	ID     uint
}

func NotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusNotFound, Code: "common.record_not_found", Message: e.Error()}
}

// IllegalTransitionError is returned when an action does not apply to the current status
// of a workflow entity, including a missing approve/reject decision.
type IllegalTransitionError struct {
	Entity string
	ID     uint
	From   string
	Action string
	Reason string
}

func (e *IllegalTransitionError) Error() string {
	subject := e.Entity
	if e.ID != 0 {
		subject = fmt.Sprintf("%s %d", e.Entity, e.ID)
	}
	if e.Reason != "" {
		return subject + ": " + e.Reason
	}
	from := e.From
	if from == "" {
		from = "none"
	}
	return fmt.Sprintf("%s: action %q is not allowed from status %q", subject, e.Action, from)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

func (e *IllegalTransitionError) Respond() *BizErrorDetail {
	return &BizErrorDetail{
		Status:  http.StatusBadRequest,
		Code:    "workflow.illegal_transition",
		Message: e.Error(),
		Data:    map[string]string{"from": e.From, "action": e.Action},
	}
}

// AuthorizationError is returned when the acting employee's role lacks the action.
type AuthorizationError struct {
	Role   string
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %s is not permitted to %s", e.Role, e.Action)
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrForbidden
}

func (e *AuthorizationError) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusForbidden, Code: "security.forbidden", Message: e.Error()}
}

// ErrBadParam wraps request decoding failures: malformed bodies, ids or query values.
type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Error() string {
	return e.Cause.Error()
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}

func (e *ErrBadParam) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: e.Error()}
}
