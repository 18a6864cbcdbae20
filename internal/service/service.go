// Package service implements the workflow operations on top of gorm. Every
// operation authorizes the acting employee against the capability table
// before it reads or writes anything.
package service

import (
	"errors"
	"fmt"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// listLimit caps every list returned to a dashboard or an inbox.
const listLimit = 25

var validate = validator.New()

// Services bundles the managers wired to one database.
type Services struct {
	Intake      *IntakeManager
	Customers   *CustomerManager
	Projects    *ProjectManager
	Tasks       *TaskManager
	Financial   *FinancialRequestManager
	Recruitment *RecruitmentManager
	Dashboards  *DashboardManager
	Employees   *EmployeeManager
}

func New(db *gorm.DB, rules workflow.RecruitmentRules) *Services {
	tasks := NewTaskManager(db)
	return &Services{
		Intake:      NewIntakeManager(db),
		Customers:   NewCustomerManager(db),
		Projects:    NewProjectManager(db),
		Tasks:       tasks,
		Financial:   NewFinancialRequestManager(db),
		Recruitment: NewRecruitmentManager(db, rules),
		Dashboards:  NewDashboardManager(db, tasks),
		Employees:   NewEmployeeManager(db),
	}
}

// validateInput runs the struct tags and reports the first failing field.
func validateInput(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Param() != "" {
			return bizerror.Invalid(fe.Field(), "failed on the %q rule (%s)", fe.Tag(), fe.Param())
		}
		return bizerror.Invalid(fe.Field(), "failed on the %q rule", fe.Tag())
	}
	return err
}

func notFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bizerror.NotFound(entity, id)
	}
	return fmt.Errorf("load %s %d: %w", entity, id, err)
}

// withID stamps the entity id on an illegal transition raised by the workflow package.
func withID(err error, id uint) error {
	var illegal *bizerror.IllegalTransitionError
	if errors.As(err, &illegal) {
		illegal.ID = id
	}
	return err
}

// compareAndSet applies updates only while the row still holds the status read at the
// start of the operation.
func compareAndSet(tx *gorm.DB, model interface{}, id uint, from interface{}, updates map[string]interface{}) (bool, error) {
	db := tx.Model(model).Where("id = ? AND status = ?", id, from).Updates(updates)
	if db.Error != nil {
		return false, db.Error
	}
	return db.RowsAffected == 1, nil
}

func staleStatus(entity string, id uint, from fmt.Stringer, action workflow.Action) error {
	return &bizerror.IllegalTransitionError{
		Entity: entity,
		ID:     id,
		From:   from.String(),
		Action: string(action),
		Reason: "status changed concurrently, reload and retry",
	}
}

func missingDecision(entity string, id uint, action workflow.Action) error {
	return &bizerror.IllegalTransitionError{Entity: entity, ID: id, Action: string(action), Reason: "missing approve parameter"}
}

func logTransition(entity string, id uint, from, to fmt.Stringer, action workflow.Action, actor *models.Employee) {
	logrus.WithFields(logrus.Fields{
		"entity":      entity,
		"entity_id":   id,
		"from":        from.String(),
		"action":      string(action),
		"to":          to.String(),
		"employee_id": actor.ID,
	}).Info("status transition")
}
