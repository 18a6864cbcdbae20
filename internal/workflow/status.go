package workflow

import (
	"database/sql/driver"
	"fmt"

	"sep-workflow/internal/bizerror"
)

// ProjectStatus is a tagged variant; the zero value means "no project yet".
type ProjectStatus struct{ name string }

var (
	ProjectDraft         = ProjectStatus{"draft"}
	ProjectPending       = ProjectStatus{"pending"}
	ProjectCSApproved    = ProjectStatus{"cs_approved"}
	ProjectCSRejected    = ProjectStatus{"cs_rejected"}
	ProjectFinReview     = ProjectStatus{"fin_review"}
	ProjectAdminApproved = ProjectStatus{"admin_approved"}
	ProjectAdminRejected = ProjectStatus{"admin_rejected"}
	ProjectCompleted     = ProjectStatus{"completed"}
)

var projectStatuses = map[string]ProjectStatus{}

func init() {
	for _, s := range []ProjectStatus{ProjectDraft, ProjectPending, ProjectCSApproved, ProjectCSRejected,
		ProjectFinReview, ProjectAdminApproved, ProjectAdminRejected, ProjectCompleted} {
		projectStatuses[s.name] = s
	}
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	st, ok := projectStatuses[s]
	if !ok {
		return ProjectStatus{}, bizerror.Invalid("status", "unknown project status %q", s)
	}
	return st, nil
}

func (s ProjectStatus) String() string { return s.name }
func (s ProjectStatus) IsZero() bool   { return s.name == "" }

func (s ProjectStatus) Terminal() bool {
	return s == ProjectCSRejected || s == ProjectAdminRejected || s == ProjectCompleted
}

func (s ProjectStatus) MarshalText() ([]byte, error) { return []byte(s.name), nil }
func (s ProjectStatus) GormDataType() string         { return "varchar(20)" }

func (s ProjectStatus) Value() (driver.Value, error) {
	if s.IsZero() {
		return nil, nil
	}
	return s.name, nil
}

func (s *ProjectStatus) Scan(src interface{}) error {
	name, err := scanName(src)
	if err != nil || name == "" {
		*s = ProjectStatus{}
		return err
	}
	st, ok := projectStatuses[name]
	if !ok {
		return fmt.Errorf("unknown project status %q", name)
	}
	*s = st
	return nil
}

type FinancialStatus struct{ name string }

var (
	FinancialPending  = FinancialStatus{"pending"}
	FinancialApproved = FinancialStatus{"approved"}
	FinancialRejected = FinancialStatus{"rejected"}
)

var financialStatuses = map[string]FinancialStatus{
	FinancialPending.name:  FinancialPending,
	FinancialApproved.name: FinancialApproved,
	FinancialRejected.name: FinancialRejected,
}

func (s FinancialStatus) String() string               { return s.name }
func (s FinancialStatus) IsZero() bool                 { return s.name == "" }
func (s FinancialStatus) MarshalText() ([]byte, error) { return []byte(s.name), nil }
func (s FinancialStatus) GormDataType() string         { return "varchar(20)" }

func (s FinancialStatus) Value() (driver.Value, error) {
	if s.IsZero() {
		return nil, nil
	}
	return s.name, nil
}

func (s *FinancialStatus) Scan(src interface{}) error {
	name, err := scanName(src)
	if err != nil || name == "" {
		*s = FinancialStatus{}
		return err
	}
	st, ok := financialStatuses[name]
	if !ok {
		return fmt.Errorf("unknown financial request status %q", name)
	}
	*s = st
	return nil
}

type RecruitmentStatus struct{ name string }

var (
	RecruitmentPending   = RecruitmentStatus{"pending"}
	RecruitmentOngoing   = RecruitmentStatus{"ongoing"}
	RecruitmentCompleted = RecruitmentStatus{"completed"}
)

var recruitmentStatuses = map[string]RecruitmentStatus{
	RecruitmentPending.name:   RecruitmentPending,
	RecruitmentOngoing.name:   RecruitmentOngoing,
	RecruitmentCompleted.name: RecruitmentCompleted,
}

func ParseRecruitmentStatus(s string) (RecruitmentStatus, error) {
	st, ok := recruitmentStatuses[s]
	if !ok {
		return RecruitmentStatus{}, bizerror.Invalid("status", "unknown recruitment status %q", s)
	}
	return st, nil
}

func (s RecruitmentStatus) String() string               { return s.name }
func (s RecruitmentStatus) IsZero() bool                 { return s.name == "" }
func (s RecruitmentStatus) MarshalText() ([]byte, error) { return []byte(s.name), nil }
func (s RecruitmentStatus) GormDataType() string         { return "varchar(20)" }

func (s RecruitmentStatus) Value() (driver.Value, error) {
	if s.IsZero() {
		return nil, nil
	}
	return s.name, nil
}

func (s *RecruitmentStatus) Scan(src interface{}) error {
	name, err := scanName(src)
	if err != nil || name == "" {
		*s = RecruitmentStatus{}
		return err
	}
	st, ok := recruitmentStatuses[name]
	if !ok {
		return fmt.Errorf("unknown recruitment status %q", name)
	}
	*s = st
	return nil
}

func scanName(src interface{}) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into a status", src)
	}
}
