package models

import (
	"fmt"
	"strings"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/workflow"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Username     string        `gorm:"uniqueIndex;size:50;not null" json:"username"`
	FirstName    string        `gorm:"size:100" json:"first_name"`
	LastName     string        `gorm:"size:100" json:"last_name"`
	Email        string        `gorm:"size:255" json:"email"`
	PasswordHash string        `gorm:"not null" json:"-"`
	Role         workflow.Role `gorm:"type:varchar(3);not null;index" json:"role"`

	ManagedTeams []Team `gorm:"foreignKey:ManagerID" json:"managed_teams,omitempty"`
}

func (e Employee) FullName() string {
	switch {
	case e.FirstName == "" && e.LastName == "":
		return e.Username
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// NewEmployee builds an employee with a hashed password. The role is mandatory;
// callers that have no specific assignment pass workflow.DefaultRole.
func NewEmployee(username, password string, role workflow.Role) (*Employee, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, bizerror.Invalid("username", "must be at least 3 characters")
	}
	if len(password) < 4 {
		return nil, bizerror.Invalid("password", "must be at least 4 characters")
	}
	if !role.Valid() {
		return nil, bizerror.Invalid("role", "unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Employee{Username: username, PasswordHash: string(hash), Role: role}, nil
}

func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

func (e *Employee) SetPassword(password string) error {
	if len(password) < 4 {
		return bizerror.Invalid("password", "must be at least 4 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	e.PasswordHash = string(hash)
	return nil
}
