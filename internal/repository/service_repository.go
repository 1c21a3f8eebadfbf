package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// ServiceRepository reads the clinic service catalogue.
type ServiceRepository struct {
	db *sqlx.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

const serviceColumns = "id, name, price, active, created_at, updated_at"

// ListActive returns the bookable services ordered by name.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]models.ClinicService, error) {
	query := fmt.Sprintf("SELECT %s FROM services WHERE active = TRUE ORDER BY name ASC", serviceColumns)
	var services []models.ClinicService
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// FindByID loads one service by id.
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*models.ClinicService, error) {
	query := fmt.Sprintf("SELECT %s FROM services WHERE id = $1", serviceColumns)
	var svc models.ClinicService
	if err := r.db.GetContext(ctx, &svc, query, id); err != nil {
		return nil, err
	}
	return &svc, nil
}
