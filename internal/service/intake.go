package service

import (
	"context"
	"fmt"

	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RawRequestInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Address     string `json:"address" validate:"required,max=200"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Available   int64  `json:"available" validate:"gte=0"`
}

// RawRequestView is what a customer service employee sees before converting a request.
type RawRequestView struct {
	Request         *models.RawRequest `json:"request"`
	Project         *models.Project    `json:"project,omitempty"`
	SuggestedBudget *int64             `json:"suggested_budget,omitempty"`
}

type IntakeManagerTraits interface {
	SubmitRawRequest(ctx context.Context, in RawRequestInput) (*models.RawRequest, error)
	GetRawRequest(ctx context.Context, employee *models.Employee, id uint) (*RawRequestView, error)
}

type IntakeManager struct {
	db *gorm.DB
}

func NewIntakeManager(db *gorm.DB) *IntakeManager {
	return &IntakeManager{db: db}
}

// SubmitRawRequest records a customer's free-text request. It needs no identity.
func (m *IntakeManager) SubmitRawRequest(ctx context.Context, in RawRequestInput) (*models.RawRequest, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	request := models.RawRequest{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Title:       in.Title,
		Description: in.Description,
		Available:   in.Available,
	}
	if err := m.db.WithContext(ctx).Create(&request).Error; err != nil {
		return nil, fmt.Errorf("create raw request: %w", err)
	}

	logrus.WithField("raw_request_id", request.ID).Info("raw request submitted")
	return &request, nil
}

func (m *IntakeManager) GetRawRequest(ctx context.Context, employee *models.Employee, id uint) (*RawRequestView, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionSaveDraft); err != nil {
		return nil, err
	}

	db := m.db.WithContext(ctx)
	var request models.RawRequest
	if err := db.First(&request, id).Error; err != nil {
		return nil, notFound(err, "raw request", id)
	}
	project, err := findProjectByRequest(db, id)
	if err != nil {
		return nil, err
	}

	view := &RawRequestView{Request: &request, Project: project}
	if project == nil {
		budget := request.Available
		view.SuggestedBudget = &budget
	}
	return view, nil
}

// findProjectByRequest returns the project converted from the raw request, or nil when
// the request has not been converted yet.
func findProjectByRequest(tx *gorm.DB, rawRequestID uint) (*models.Project, error) {
	var projects []models.Project
	if err := tx.Where("initial_request_id = ?", rawRequestID).Limit(1).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("find project of raw request %d: %w", rawRequestID, err)
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return &projects[0], nil
}
