package service

import (
	"context"
	"fmt"

	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"gorm.io/gorm"
)

// Dashboard holds the named result sets shown on an employee's home page.
type Dashboard map[string]interface{}

type DashboardManagerTraits interface {
	Dashboard(ctx context.Context, employee *models.Employee) (Dashboard, error)
}

type DashboardManager struct {
	db    *gorm.DB
	tasks *TaskManager
}

func NewDashboardManager(db *gorm.DB, tasks *TaskManager) *DashboardManager {
	return &DashboardManager{db: db, tasks: tasks}
}

func (m *DashboardManager) Dashboard(ctx context.Context, employee *models.Employee) (Dashboard, error) {
	db := m.db.WithContext(ctx)
	board := Dashboard{}

	var err error
	switch employee.Role {
	case workflow.RoleCustomerServiceEmployee:
		if board["raw_requests"], err = openRawRequests(db); err != nil {
			return nil, err
		}
		board["project_history"], err = projects(db.Where("created_by_id = ? AND status <> ?", employee.ID, workflow.ProjectDraft))

	case workflow.RoleCustomerServiceManager:
		if board["waiting_approval"], err = projectsIn(db, workflow.ProjectPending); err != nil {
			return nil, err
		}
		board["project_history"], err = projects(db.Where("status NOT IN ?",
			[]workflow.ProjectStatus{workflow.ProjectDraft, workflow.ProjectPending}))

	case workflow.RoleFinancialManager:
		if board["waiting_feedback"], err = projectsIn(db, workflow.ProjectCSApproved); err != nil {
			return nil, err
		}
		if board["project_history"], err = projectsIn(db,
			workflow.ProjectFinReview, workflow.ProjectAdminApproved, workflow.ProjectAdminRejected); err != nil {
			return nil, err
		}
		var requests []models.FinancialRequest
		err = db.Preload("Project").Where("status = ?", workflow.FinancialPending).
			Order("created_at desc").Limit(listLimit).Find(&requests).Error
		board["financial_requests"] = requests

	case workflow.RoleAdminManager:
		if board["waiting_approval"], err = projectsIn(db, workflow.ProjectFinReview); err != nil {
			return nil, err
		}
		board["project_history"], err = projectsIn(db,
			workflow.ProjectAdminApproved, workflow.ProjectAdminRejected, workflow.ProjectCompleted)

	case workflow.RoleProductionManager, workflow.RoleServiceManager:
		if board["projects"], err = projectsIn(db, workflow.ProjectAdminApproved); err != nil {
			return nil, err
		}
		board["teams"], err = managedTeams(db, employee.ID)

	case workflow.RoleProductionEmployee, workflow.RoleServiceEmployee:
		if board["tasks"], err = m.tasks.ListMyTasks(ctx, employee); err != nil {
			return nil, err
		}
		board["projects"], err = projectsIn(db, workflow.ProjectAdminApproved)

	case workflow.RoleHRManager:
		if board["pending_campaigns"], err = recruitmentPostsIn(db, workflow.RecruitmentPending); err != nil {
			return nil, err
		}
		board["ongoing_campaigns"], err = recruitmentPostsIn(db, workflow.RecruitmentOngoing)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s dashboard: %w", employee.Role, err)
	}
	return board, nil
}

// openRawRequests lists the requests that still need customer service: never converted,
// or converted into a draft.
func openRawRequests(db *gorm.DB) ([]models.RawRequest, error) {
	var requests []models.RawRequest
	err := db.Select("raw_requests.*").
		Joins("LEFT JOIN projects ON projects.initial_request_id = raw_requests.id AND projects.deleted_at IS NULL").
		Where("projects.id IS NULL OR projects.status = ?", workflow.ProjectDraft).
		Order("raw_requests.created_at desc").
		Limit(listLimit).
		Find(&requests).Error
	return requests, err
}

func projectsIn(db *gorm.DB, statuses ...workflow.ProjectStatus) ([]models.Project, error) {
	return projects(db.Where("status IN ?", statuses))
}

func projects(q *gorm.DB) ([]models.Project, error) {
	var list []models.Project
	err := q.Preload("Client").Order("created_at desc").Limit(listLimit).Find(&list).Error
	return list, err
}

func recruitmentPostsIn(db *gorm.DB, status workflow.RecruitmentStatus) ([]models.RecruitmentPost, error) {
	var posts []models.RecruitmentPost
	err := db.Where("status = ?", status).Order("created_at desc").Limit(listLimit).Find(&posts).Error
	return posts, err
}
