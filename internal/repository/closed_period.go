package repository

import (
	"time"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClosedPeriodRepository handles database operations for closed payroll
// periods
type ClosedPeriodRepository struct {
	db *gorm.DB
}

// NewClosedPeriodRepository creates a new closed period repository
func NewClosedPeriodRepository(db *gorm.DB) *ClosedPeriodRepository {
	return &ClosedPeriodRepository{db: db}
}

// Create creates a new closed period
func (r *ClosedPeriodRepository) Create(period *models.ClosedPeriod) error {
	return r.db.Create(period).Error
}

// GetByCompanyID retrieves all closed periods of a company
func (r *ClosedPeriodRepository) GetByCompanyID(companyID uuid.UUID) ([]models.ClosedPeriod, error) {
	var periods []models.ClosedPeriod
	err := r.db.Where("company_id = ?", companyID).Order("start_date").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

// AnyOverlapping reports whether any closed period overlaps the [from, to]
// date range. The modifiability guard calls this with a week's Monday and
// Friday.
func (r *ClosedPeriodRepository) AnyOverlapping(companyID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.ClosedPeriod{}).
		Where("company_id = ? AND start_date <= ? AND end_date >= ?", companyID, to, from).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete deletes a closed period (reopening the period)
func (r *ClosedPeriodRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ClosedPeriod{}, "id = ?", id).Error
}
