package service

import (
	"context"
	"fmt"
	"time"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TaskInput struct {
	ProjectID   uint              `json:"-"`
	TeamID      uint              `json:"-"`
	AssigneeID  uint              `json:"assignee_id" validate:"required"`
	Subject     string            `json:"subject" validate:"required,max=100"`
	Priority    workflow.Priority `json:"priority"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"due_date" validate:"required"`
}

type TaskManagerTraits interface {
	AssignTask(ctx context.Context, sender *models.Employee, in TaskInput) (*models.Task, error)
	ListMyTasks(ctx context.Context, employee *models.Employee) ([]models.Task, error)
	ManagedTeams(ctx context.Context, manager *models.Employee, projectID uint) ([]models.Team, error)
	GetTask(ctx context.Context, employee *models.Employee, projectID, taskID uint) (*models.Task, error)
	CompleteTask(ctx context.Context, employee *models.Employee, taskID uint) (*models.Task, error)
}

type TaskManager struct {
	db *gorm.DB
}

func NewTaskManager(db *gorm.DB) *TaskManager {
	return &TaskManager{db: db}
}

// AssignTask dispatches a task on a staffed project through a team the sender manages.
// Nothing is written unless every check passes.
func (m *TaskManager) AssignTask(ctx context.Context, sender *models.Employee, in TaskInput) (*models.Task, error) {
	if err := workflow.Authorize(sender.Role, workflow.ActionAssignTask); err != nil {
		return nil, err
	}

	db := m.db.WithContext(ctx)
	if _, err := loadStaffedProject(db, in.ProjectID, workflow.ActionAssignTask); err != nil {
		return nil, err
	}

	var team models.Team
	if err := db.Preload("Members").First(&team, in.TeamID).Error; err != nil {
		return nil, notFound(err, "team", in.TeamID)
	}
	if team.ManagerID != sender.ID {
		return nil, &bizerror.AuthorizationError{Role: string(sender.Role), Action: "assign tasks through team " + team.Name}
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.Priority.Valid() {
		return nil, bizerror.Invalid("priority", "must be between %d and %d", workflow.PriorityLow, workflow.PriorityCritical)
	}
	if !team.HasMember(in.AssigneeID) {
		return nil, bizerror.Invalid("assignee_id", "employee %d is not a member of team %s", in.AssigneeID, team.Name)
	}

	task := models.Task{
		ProjectID:   in.ProjectID,
		TeamID:      team.ID,
		AssigneeID:  in.AssigneeID,
		SenderID:    &sender.ID,
		Subject:     in.Subject,
		Priority:    in.Priority,
		Description: in.Description,
		DueDate:     *in.DueDate,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"task_id":     task.ID,
		"project_id":  task.ProjectID,
		"team_id":     task.TeamID,
		"assignee_id": task.AssigneeID,
		"priority":    task.Priority.String(),
	}).Info("task assigned")
	return &task, nil
}

// ListMyTasks returns the open tasks of the employee, the most urgent first.
func (m *TaskManager) ListMyTasks(ctx context.Context, employee *models.Employee) ([]models.Task, error) {
	var tasks []models.Task
	err := m.db.WithContext(ctx).
		Preload("Project").
		Where("assignee_id = ? AND completed = ?", employee.ID, false).
		Order("due_date asc").
		Limit(listLimit).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks of employee %d: %w", employee.ID, err)
	}
	return tasks, nil
}

// ManagedTeams lists the teams the manager can dispatch work through on the project.
func (m *TaskManager) ManagedTeams(ctx context.Context, manager *models.Employee, projectID uint) ([]models.Team, error) {
	if err := workflow.Authorize(manager.Role, workflow.ActionAssignTask); err != nil {
		return nil, err
	}
	db := m.db.WithContext(ctx)
	if _, err := loadStaffedProject(db, projectID, workflow.ActionAssignTask); err != nil {
		return nil, err
	}
	return managedTeams(db, manager.ID)
}

func managedTeams(db *gorm.DB, managerID uint) ([]models.Team, error) {
	var teams []models.Team
	err := db.Preload("Members.Employee").Where("manager_id = ?", managerID).Order("name asc").Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("list teams of manager %d: %w", managerID, err)
	}
	return teams, nil
}

// GetTask shows a task to its assignee, its sender and the manager of its team.
func (m *TaskManager) GetTask(ctx context.Context, employee *models.Employee, projectID, taskID uint) (*models.Task, error) {
	db := m.db.WithContext(ctx)
	var task models.Task
	err := db.Preload("Assignee").Preload("Sender").
		Where("project_id = ?", projectID).
		First(&task, taskID).Error
	if err != nil {
		return nil, notFound(err, "task", taskID)
	}

	if task.AssigneeID == employee.ID || (task.SenderID != nil && *task.SenderID == employee.ID) {
		return &task, nil
	}
	var team models.Team
	if err := db.First(&team, task.TeamID).Error; err == nil && team.ManagerID == employee.ID {
		return &task, nil
	}
	return nil, &bizerror.AuthorizationError{Role: string(employee.Role), Action: "view task"}
}

// CompleteTask marks a task done. Completing it again is a no-op.
func (m *TaskManager) CompleteTask(ctx context.Context, employee *models.Employee, taskID uint) (*models.Task, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionCompleteTask); err != nil {
		return nil, err
	}

	db := m.db.WithContext(ctx)
	var task models.Task
	if err := db.First(&task, taskID).Error; err != nil {
		return nil, notFound(err, "task", taskID)
	}
	if task.AssigneeID != employee.ID {
		return nil, &bizerror.AuthorizationError{Role: string(employee.Role), Action: "complete a task assigned to someone else"}
	}
	if task.Completed {
		return &task, nil
	}

	if err := db.Model(&task).Update("completed", true).Error; err != nil {
		return nil, fmt.Errorf("complete task %d: %w", taskID, err)
	}
	task.Completed = true
	logrus.WithFields(logrus.Fields{"task_id": task.ID, "employee_id": employee.ID}).Info("task completed")
	return &task, nil
}

// loadStaffedProject loads a project that has passed administration and is open for work.
func loadStaffedProject(db *gorm.DB, projectID uint, action workflow.Action) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, projectID).Error; err != nil {
		return nil, notFound(err, projectEntity, projectID)
	}
	if !workflow.Staffed(project.Status) {
		return nil, &bizerror.IllegalTransitionError{
			Entity: projectEntity,
			ID:     projectID,
			From:   project.Status.String(),
			Action: string(action),
			Reason: "project is not staffed",
		}
	}
	return &project, nil
}
