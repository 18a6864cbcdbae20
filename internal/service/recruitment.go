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

const recruitmentPostEntity = "recruitment post"

type RecruitmentPostInput struct {
	ContractType       models.ContractType `json:"contract_type" validate:"required"`
	Department         models.Department   `json:"requesting_department" validate:"required"`
	MinYearsExperience int                 `json:"min_years_experience" validate:"gte=0"`
	Title              string              `json:"title" validate:"required,max=100"`
	Description        string              `json:"description"`
}

type RecruitmentManagerTraits interface {
	CreateRecruitmentPost(ctx context.Context, manager *models.Employee, in RecruitmentPostInput) (*models.RecruitmentPost, error)
	AdvanceRecruitment(ctx context.Context, employee *models.Employee, postID uint, action workflow.Action) (*models.RecruitmentPost, error)
	RecruitmentPostsByStatus(ctx context.Context, status workflow.RecruitmentStatus) ([]models.RecruitmentPost, error)
}

type RecruitmentManager struct {
	db    *gorm.DB
	rules workflow.RecruitmentRules
}

func NewRecruitmentManager(db *gorm.DB, rules workflow.RecruitmentRules) *RecruitmentManager {
	return &RecruitmentManager{db: db, rules: rules}
}

func (m *RecruitmentManager) CreateRecruitmentPost(ctx context.Context, manager *models.Employee,
	in RecruitmentPostInput) (*models.RecruitmentPost, error) {
	if err := workflow.Authorize(manager.Role, workflow.ActionCreateRecruitmentPost); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.ContractType.Valid() {
		return nil, bizerror.Invalid("contract_type", "unknown contract type %q", in.ContractType)
	}
	if !in.Department.Valid() {
		return nil, bizerror.Invalid("requesting_department", "unknown department %q", in.Department)
	}

	post := models.RecruitmentPost{
		ContractType:         in.ContractType,
		RequestingDepartment: in.Department,
		MinYearsExperience:   in.MinYearsExperience,
		Title:                in.Title,
		Description:          in.Description,
		RequestedByID:        &manager.ID,
		Status:               workflow.RecruitmentPending,
	}
	if err := m.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create recruitment post: %w", err)
	}

	logrus.WithFields(logrus.Fields{"recruitment_post_id": post.ID, "department": post.RequestingDepartment}).
		Info("recruitment post created")
	return &post, nil
}

// AdvanceRecruitment moves a campaign forward with start_campaign or complete_campaign.
func (m *RecruitmentManager) AdvanceRecruitment(ctx context.Context, employee *models.Employee, postID uint,
	action workflow.Action) (*models.RecruitmentPost, error) {
	if err := workflow.Authorize(employee.Role, action); err != nil {
		return nil, err
	}

	var (
		post models.RecruitmentPost
		from workflow.RecruitmentStatus
		next workflow.RecruitmentStatus
	)
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, postID).Error; err != nil {
			return notFound(err, recruitmentPostEntity, postID)
		}
		from = post.Status

		var err error
		next, err = m.rules.Next(from, action, employee.Role)
		if err != nil {
			return withID(err, postID)
		}

		ok, err := compareAndSet(tx, &models.RecruitmentPost{}, postID, from, map[string]interface{}{"status": next})
		if err != nil {
			return fmt.Errorf("update recruitment post %d: %w", postID, err)
		}
		if !ok {
			return staleStatus(recruitmentPostEntity, postID, from, action)
		}
		post.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	logTransition(recruitmentPostEntity, postID, from, next, action, employee)
	return &post, nil
}

func (m *RecruitmentManager) RecruitmentPostsByStatus(ctx context.Context, status workflow.RecruitmentStatus) ([]models.RecruitmentPost, error) {
	var posts []models.RecruitmentPost
	err := m.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at desc").
		Limit(listLimit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list %s recruitment posts: %w", status, err)
	}
	return posts, nil
}
