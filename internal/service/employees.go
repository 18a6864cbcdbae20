package service

import (
	"context"
	"errors"
	"fmt"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EmployeeManagerTraits interface {
	Authenticate(ctx context.Context, username, password string) (*models.Employee, error)
	ChangePassword(ctx context.Context, employee *models.Employee, oldPassword, newPassword string) error
	Find(ctx context.Context, id uint) (*models.Employee, error)
}

type EmployeeManager struct {
	db *gorm.DB
}

func NewEmployeeManager(db *gorm.DB) *EmployeeManager {
	return &EmployeeManager{db: db}
}

// Authenticate does not tell an unknown username from a wrong password.
func (m *EmployeeManager) Authenticate(ctx context.Context, username, password string) (*models.Employee, error) {
	var employee models.Employee
	err := m.db.WithContext(ctx).Where("username = ?", username).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bizerror.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load employee %s: %w", username, err)
	}
	if !employee.CheckPassword(password) {
		logrus.WithField("username", username).Warn("login failed: wrong password")
		return nil, bizerror.ErrUnauthenticated
	}
	return &employee, nil
}

func (m *EmployeeManager) ChangePassword(ctx context.Context, employee *models.Employee, oldPassword, newPassword string) error {
	db := m.db.WithContext(ctx)
	var current models.Employee
	if err := db.First(&current, employee.ID).Error; err != nil {
		return notFound(err, "employee", employee.ID)
	}
	if !current.CheckPassword(oldPassword) {
		return bizerror.Invalid("old_password", "does not match")
	}
	if err := current.SetPassword(newPassword); err != nil {
		return err
	}
	if err := db.Model(&current).Update("password_hash", current.PasswordHash).Error; err != nil {
		return fmt.Errorf("update password of employee %d: %w", employee.ID, err)
	}
	logrus.WithField("employee_id", employee.ID).Info("password changed")
	return nil
}

func (m *EmployeeManager) Find(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := m.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, notFound(err, "employee", id)
	}
	return &employee, nil
}
