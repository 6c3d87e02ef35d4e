package repository

import (
	"time"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AffectationRepository handles database operations for crew assignments
type AffectationRepository struct {
	db *gorm.DB
}

// NewAffectationRepository creates a new affectation repository
func NewAffectationRepository(db *gorm.DB) *AffectationRepository {
	return &AffectationRepository{db: db}
}

// Create creates a new affectation
func (r *AffectationRepository) Create(affectation *models.Affectation) error {
	return r.db.Create(affectation).Error
}

// GetByID retrieves an affectation by ID
func (r *AffectationRepository) GetByID(id uuid.UUID) (*models.Affectation, error) {
	var affectation models.Affectation
	err := r.db.First(&affectation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &affectation, nil
}

// GetActiveByChantier retrieves the currently-active assignments of a
// chantier (date_fin is null), optionally excluding one employee (the crew
// lead survives dissolution).
func (r *AffectationRepository) GetActiveByChantier(companyID, chantierID uuid.UUID, excludeEmployeeID *uuid.UUID) ([]models.Affectation, error) {
	query := r.db.Where("company_id = ? AND chantier_id = ? AND date_fin IS NULL", companyID, chantierID)
	if excludeEmployeeID != nil {
		query = query.Where("employee_id <> ?", *excludeEmployeeID)
	}
	var affectations []models.Affectation
	err := query.Order("date_debut").Find(&affectations).Error
	if err != nil {
		return nil, err
	}
	return affectations, nil
}

// GetActiveByEmployee retrieves an employee's currently-active assignment,
// if any.
func (r *AffectationRepository) GetActiveByEmployee(companyID, employeeID uuid.UUID) (*models.Affectation, error) {
	var affectation models.Affectation
	err := r.db.First(&affectation, "company_id = ? AND employee_id = ? AND date_fin IS NULL", companyID, employeeID).Error
	if err != nil {
		return nil, err
	}
	return &affectation, nil
}

// GetByEmployee retrieves all assignments of an employee, newest first
func (r *AffectationRepository) GetByEmployee(companyID, employeeID uuid.UUID) ([]models.Affectation, error) {
	var affectations []models.Affectation
	err := r.db.Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Order("date_debut DESC").Find(&affectations).Error
	if err != nil {
		return nil, err
	}
	return affectations, nil
}

// Close ends an assignment by setting its date_fin. Closing an already
// closed assignment simply overwrites the end date, which keeps
// dissolution retries safe.
func (r *AffectationRepository) Close(id uuid.UUID, dateFin time.Time) error {
	return r.db.Model(&models.Affectation{}).Where("id = ?", id).Update("date_fin", dateFin).Error
}

// Delete deletes an affectation
func (r *AffectationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Affectation{}, "id = ?", id).Error
}
