package service

import (
	"context"
	"fmt"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const financialRequestEntity = "financial request"

type FinancialRequestInput struct {
	Department models.Department `json:"requesting_department" validate:"required"`
	Amount     int64             `json:"amount" validate:"gt=0"`
	Reason     string            `json:"reason" validate:"required"`
}

type FinancialRequestManagerTraits interface {
	CreateFinancialRequest(ctx context.Context, manager *models.Employee, projectID uint, in FinancialRequestInput) (*models.FinancialRequest, error)
	DecideFinancialRequest(ctx context.Context, employee *models.Employee, requestID uint, approve *bool) (*models.FinancialRequest, error)
	PendingFinancialRequests(ctx context.Context) ([]models.FinancialRequest, error)
}

type FinancialRequestManager struct {
	db *gorm.DB
}

func NewFinancialRequestManager(db *gorm.DB) *FinancialRequestManager {
	return &FinancialRequestManager{db: db}
}

func (m *FinancialRequestManager) CreateFinancialRequest(ctx context.Context, manager *models.Employee, projectID uint,
	in FinancialRequestInput) (*models.FinancialRequest, error) {
	if err := workflow.Authorize(manager.Role, workflow.ActionCreateFinancialRequest); err != nil {
		return nil, err
	}

	db := m.db.WithContext(ctx)
	if _, err := loadStaffedProject(db, projectID, workflow.ActionCreateFinancialRequest); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.Department.Valid() {
		return nil, bizerror.Invalid("requesting_department", "unknown department %q", in.Department)
	}

	request := models.FinancialRequest{
		ProjectID:            projectID,
		RequestingDepartment: in.Department,
		Amount:               in.Amount,
		Reason:               in.Reason,
		RequestedByID:        &manager.ID,
		Status:               workflow.FinancialPending,
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("create financial request: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"financial_request_id": request.ID,
		"project_id":           projectID,
		"amount":               request.Amount,
	}).Info("financial request created")
	return &request, nil
}

// DecideFinancialRequest approves or rejects a pending request. Decisions are final.
func (m *FinancialRequestManager) DecideFinancialRequest(ctx context.Context, employee *models.Employee, requestID uint,
	approve *bool) (*models.FinancialRequest, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionDecideFinancialRequest); err != nil {
		return nil, err
	}
	if approve == nil {
		return nil, missingDecision(financialRequestEntity, requestID, workflow.ActionDecideFinancialRequest)
	}

	var (
		request models.FinancialRequest
		from    workflow.FinancialStatus
		next    workflow.FinancialStatus
	)
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, requestID).Error; err != nil {
			return notFound(err, financialRequestEntity, requestID)
		}
		from = request.Status

		var err error
		next, err = workflow.NextFinancialStatus(from, *approve, employee.Role)
		if err != nil {
			return withID(err, requestID)
		}

		ok, err := compareAndSet(tx, &models.FinancialRequest{}, requestID, from, map[string]interface{}{"status": next})
		if err != nil {
			return fmt.Errorf("update financial request %d: %w", requestID, err)
		}
		if !ok {
			return staleStatus(financialRequestEntity, requestID, from, workflow.ActionDecideFinancialRequest)
		}
		request.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	logTransition(financialRequestEntity, requestID, from, next, workflow.ActionDecideFinancialRequest, employee)
	return &request, nil
}

// PendingFinancialRequests lists undecided requests, oldest first.
func (m *FinancialRequestManager) PendingFinancialRequests(ctx context.Context) ([]models.FinancialRequest, error) {
	var requests []models.FinancialRequest
	err := m.db.WithContext(ctx).
		Preload("Project").
		Where("status = ?", workflow.FinancialPending).
		Order("created_at asc").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list pending financial requests: %w", err)
	}
	return requests, nil
}
