package service

import (
	"context"
	"fmt"

	"sep-workflow/internal/models"

	"gorm.io/gorm"
)

type CustomerManagerTraits interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id uint) (*models.Customer, error)
}

// CustomerManager reads the customers created when raw requests are converted.
type CustomerManager struct {
	db *gorm.DB
}

func NewCustomerManager(db *gorm.DB) *CustomerManager {
	return &CustomerManager{db: db}
}

func (m *CustomerManager) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := m.db.WithContext(ctx).Order("name asc").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (m *CustomerManager) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := m.db.WithContext(ctx).
		Preload("Projects", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		First(&customer, id).Error
	if err != nil {
		return nil, notFound(err, "customer", id)
	}
	return &customer, nil
}
