package service

import (
	"context"
	"fmt"
	"time"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/models"
	"sep-workflow/internal/workflow"

	"gorm.io/gorm"
)

const projectEntity = "project"

type ProjectInput struct {
	Title           string     `json:"title" validate:"required,max=100"`
	Description     string     `json:"description"`
	EstimatedBudget *int64     `json:"estimated_budget" validate:"omitempty,gte=0"`
	FromDate        *time.Time `json:"from_date"`
	ToDate          *time.Time `json:"to_date"`
	ExpectedGuests  *int       `json:"expected_guests" validate:"omitempty,gte=0"`
}

type MeetingInput struct {
	Date      *time.Time `json:"date" validate:"required"`
	Time      string     `json:"time" validate:"required,datetime=15:04"`
	MemberIDs []uint     `json:"member_ids"`
}

type ProjectFilter struct {
	Status   string `form:"status"`
	ClientID uint   `form:"client_id"`
}

type ProjectManagerTraits interface {
	SaveFromRawRequest(ctx context.Context, employee *models.Employee, rawRequestID uint, in ProjectInput, action workflow.Action) (*models.Project, error)
	ScheduleMeeting(ctx context.Context, employee *models.Employee, projectID uint, in MeetingInput) (*models.Project, error)
	ReviewByCustomerService(ctx context.Context, employee *models.Employee, projectID uint, approve *bool) (*models.Project, error)
	SubmitFinancialFeedback(ctx context.Context, employee *models.Employee, projectID uint, feedback string, publish bool) (*models.Project, error)
	ReviewByAdministration(ctx context.Context, employee *models.Employee, projectID uint, approve *bool) (*models.Project, error)
	Complete(ctx context.Context, employee *models.Employee, projectID uint) (*models.Project, error)
	Get(ctx context.Context, projectID uint) (*models.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
}

type ProjectManager struct {
	db *gorm.DB
}

func NewProjectManager(db *gorm.DB) *ProjectManager {
	return &ProjectManager{db: db}
}

// SaveFromRawRequest converts a raw request into its project, or edits that project while it
// is still a draft. action is save_draft or publish.
func (m *ProjectManager) SaveFromRawRequest(ctx context.Context, employee *models.Employee, rawRequestID uint,
	in ProjectInput, action workflow.Action) (*models.Project, error) {
	if err := workflow.Authorize(employee.Role, action); err != nil {
		return nil, err
	}

	var (
		project models.Project
		from    workflow.ProjectStatus
		next    workflow.ProjectStatus
	)
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request models.RawRequest
		if err := tx.First(&request, rawRequestID).Error; err != nil {
			return notFound(err, "raw request", rawRequestID)
		}

		existing, err := findProjectByRequest(tx, rawRequestID)
		if err != nil {
			return err
		}
		if existing != nil {
			from = existing.Status
			if from != workflow.ProjectDraft {
				return &bizerror.IllegalTransitionError{
					Entity: projectEntity,
					ID:     existing.ID,
					From:   from.String(),
					Action: string(action),
					Reason: "project is not modifiable",
				}
			}
		}
		if err := validateInput(in); err != nil {
			return err
		}
		if in.FromDate != nil && in.ToDate != nil && in.FromDate.After(*in.ToDate) {
			return bizerror.Invalid("to_date", "must not be before from_date")
		}

		next, err = workflow.NextProjectStatus(from, action, employee.Role)
		if err != nil {
			if existing != nil {
				return withID(err, existing.ID)
			}
			return err
		}

		customer := models.Customer{Name: request.Name, Email: request.Email, Phone: request.Phone, Address: request.Address}
		if err := tx.Where(&customer).FirstOrCreate(&customer).Error; err != nil {
			return fmt.Errorf("find or create customer: %w", err)
		}

		if existing == nil {
			project = models.Project{
				ClientID:         &customer.ID,
				InitialRequestID: &request.ID,
				Title:            in.Title,
				Description:      in.Description,
				EstimatedBudget:  in.EstimatedBudget,
				FromDate:         in.FromDate,
				ToDate:           in.ToDate,
				ExpectedGuests:   in.ExpectedGuests,
				Status:           next,
				CreatedByID:      &employee.ID,
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("create project: %w", err)
			}
			return nil
		}

		ok, err := compareAndSet(tx, &models.Project{}, existing.ID, from, map[string]interface{}{
			"client_id":        customer.ID,
			"title":            in.Title,
			"description":      in.Description,
			"estimated_budget": in.EstimatedBudget,
			"from_date":        in.FromDate,
			"to_date":          in.ToDate,
			"expected_guests":  in.ExpectedGuests,
			"status":           next,
		})
		if err != nil {
			return fmt.Errorf("update project %d: %w", existing.ID, err)
		}
		if !ok {
			return staleStatus(projectEntity, existing.ID, from, action)
		}
		return tx.First(&project, existing.ID).Error
	})
	if err != nil {
		return nil, err
	}

	logTransition(projectEntity, project.ID, from, next, action, employee)
	return &project, nil
}

// ScheduleMeeting creates or replaces the client meeting of a draft project.
func (m *ProjectManager) ScheduleMeeting(ctx context.Context, employee *models.Employee, projectID uint, in MeetingInput) (*models.Project, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionScheduleMeeting); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var project models.Project
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, projectID).Error; err != nil {
			return notFound(err, projectEntity, projectID)
		}
		if project.Status != workflow.ProjectDraft {
			return &bizerror.IllegalTransitionError{
				Entity: projectEntity,
				ID:     projectID,
				From:   project.Status.String(),
				Action: string(workflow.ActionScheduleMeeting),
				Reason: "meetings can only be scheduled on draft projects",
			}
		}

		var members []models.Employee
		if len(in.MemberIDs) > 0 {
			if err := tx.Where("id IN ?", in.MemberIDs).Find(&members).Error; err != nil {
				return fmt.Errorf("load meeting members: %w", err)
			}
			if len(members) != len(uniqueIDs(in.MemberIDs)) {
				return bizerror.Invalid("member_ids", "unknown employee in meeting members")
			}
		}

		var meeting models.Meeting
		if project.MeetingID != nil {
			if err := tx.First(&meeting, *project.MeetingID).Error; err != nil {
				return notFound(err, "meeting", *project.MeetingID)
			}
		}
		meeting.Date = *in.Date
		meeting.Time = in.Time
		if err := tx.Save(&meeting).Error; err != nil {
			return fmt.Errorf("save meeting: %w", err)
		}

		association := tx.Model(&meeting).Association("Members")
		if len(members) > 0 {
			if err := association.Replace(members); err != nil {
				return fmt.Errorf("replace meeting members: %w", err)
			}
		} else if err := association.Clear(); err != nil {
			return fmt.Errorf("clear meeting members: %w", err)
		}

		ok, err := compareAndSet(tx, &models.Project{}, projectID, workflow.ProjectDraft,
			map[string]interface{}{"meeting_id": meeting.ID})
		if err != nil {
			return fmt.Errorf("link meeting to project %d: %w", projectID, err)
		}
		if !ok {
			return staleStatus(projectEntity, projectID, workflow.ProjectDraft, workflow.ActionScheduleMeeting)
		}
		return tx.Preload("Meeting.Members").First(&project, projectID).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (m *ProjectManager) ReviewByCustomerService(ctx context.Context, employee *models.Employee, projectID uint, approve *bool) (*models.Project, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionCSApprove); err != nil {
		return nil, err
	}
	if approve == nil {
		return nil, missingDecision(projectEntity, projectID, workflow.ActionCSApprove)
	}
	return m.transition(ctx, employee, projectID, workflow.Decision(*approve, workflow.ActionCSApprove, workflow.ActionCSReject), nil)
}

// SubmitFinancialFeedback always stores the feedback text. A draft keeps the project with the
// financial manager; publishing hands it over to administration.
func (m *ProjectManager) SubmitFinancialFeedback(ctx context.Context, employee *models.Employee, projectID uint,
	feedback string, publish bool) (*models.Project, error) {
	action := workflow.ActionFinSaveDraft
	if publish {
		action = workflow.ActionFinPublish
	}
	if err := workflow.Authorize(employee.Role, action); err != nil {
		return nil, err
	}
	return m.transition(ctx, employee, projectID, action, map[string]interface{}{
		"financial_feedback":       feedback,
		"financial_feedback_draft": !publish,
	})
}

func (m *ProjectManager) ReviewByAdministration(ctx context.Context, employee *models.Employee, projectID uint, approve *bool) (*models.Project, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionAdminApprove); err != nil {
		return nil, err
	}
	if approve == nil {
		return nil, missingDecision(projectEntity, projectID, workflow.ActionAdminApprove)
	}
	return m.transition(ctx, employee, projectID, workflow.Decision(*approve, workflow.ActionAdminApprove, workflow.ActionAdminReject), nil)
}

func (m *ProjectManager) Complete(ctx context.Context, employee *models.Employee, projectID uint) (*models.Project, error) {
	if err := workflow.Authorize(employee.Role, workflow.ActionComplete); err != nil {
		return nil, err
	}
	return m.transition(ctx, employee, projectID, workflow.ActionComplete, nil)
}

func (m *ProjectManager) transition(ctx context.Context, employee *models.Employee, projectID uint,
	action workflow.Action, extra map[string]interface{}) (*models.Project, error) {
	var (
		project models.Project
		from    workflow.ProjectStatus
		next    workflow.ProjectStatus
	)
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, projectID).Error; err != nil {
			return notFound(err, projectEntity, projectID)
		}
		from = project.Status

		var err error
		next, err = workflow.NextProjectStatus(from, action, employee.Role)
		if err != nil {
			return withID(err, projectID)
		}

		updates := map[string]interface{}{"status": next}
		for k, v := range extra {
			updates[k] = v
		}
		ok, err := compareAndSet(tx, &models.Project{}, projectID, from, updates)
		if err != nil {
			return fmt.Errorf("update project %d: %w", projectID, err)
		}
		if !ok {
			return staleStatus(projectEntity, projectID, from, action)
		}
		return tx.First(&project, projectID).Error
	})
	if err != nil {
		return nil, err
	}

	logTransition(projectEntity, projectID, from, next, action, employee)
	return &project, nil
}

func (m *ProjectManager) Get(ctx context.Context, projectID uint) (*models.Project, error) {
	var project models.Project
	err := m.db.WithContext(ctx).
		Preload("Client").
		Preload("Meeting.Members").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("due_date asc") }).
		Preload("FinancialRequests").
		First(&project, projectID).Error
	if err != nil {
		return nil, notFound(err, projectEntity, projectID)
	}
	return &project, nil
}

// List returns projects newest first, optionally narrowed to one status or one client.
func (m *ProjectManager) List(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	q := m.db.WithContext(ctx).Preload("Client").Order("created_at desc")
	if filter.Status != "" {
		status, err := workflow.ParseProjectStatus(filter.Status)
		if err != nil {
			return nil, err
		}
		q = q.Where("status = ?", status)
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
