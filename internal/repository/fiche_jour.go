package repository

import (
	"time"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FicheJourRepository handles database operations for fiche day rows
type FicheJourRepository struct {
	db *gorm.DB
}

// NewFicheJourRepository creates a new fiche day repository
func NewFicheJourRepository(db *gorm.DB) *FicheJourRepository {
	return &FicheJourRepository{db: db}
}

// Create creates a new fiche day
func (r *FicheJourRepository) Create(jour *models.FicheJour) error {
	return r.db.Create(jour).Error
}

// GetByID retrieves a fiche day by ID
func (r *FicheJourRepository) GetByID(id uuid.UUID) (*models.FicheJour, error) {
	var jour models.FicheJour
	err := r.db.First(&jour, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &jour, nil
}

// GetByIDs retrieves several fiche days at once
func (r *FicheJourRepository) GetByIDs(ids []uuid.UUID) ([]models.FicheJour, error) {
	var jours []models.FicheJour
	err := r.db.Where("id IN ?", ids).Find(&jours).Error
	if err != nil {
		return nil, err
	}
	return jours, nil
}

// GetByFicheID retrieves all day rows of a fiche in date order
func (r *FicheJourRepository) GetByFicheID(ficheID uuid.UUID) ([]models.FicheJour, error) {
	var jours []models.FicheJour
	err := r.db.Where("fiche_id = ?", ficheID).Order("date").Find(&jours).Error
	if err != nil {
		return nil, err
	}
	return jours, nil
}

// GetByEmployeeAndWeekOnChantier returns the day ids an employee has on a
// chantier during a week; the trajet batch apply uses it for the
// "all days this week" choice.
func (r *FicheJourRepository) GetByEmployeeAndWeekOnChantier(companyID, employeeID, chantierID uuid.UUID, week string) ([]models.FicheJour, error) {
	var jours []models.FicheJour
	err := r.db.
		Joins("JOIN fiches ON fiches.id = fiches_jours.fiche_id").
		Where("fiches.company_id = ? AND fiches.employee_id = ? AND fiches.chantier_id = ? AND fiches.week = ?",
			companyID, employeeID, chantierID, week).
		Order("fiches_jours.date").
		Find(&jours).Error
	if err != nil {
		return nil, err
	}
	return jours, nil
}

// Update updates a fiche day
func (r *FicheJourRepository) Update(jour *models.FicheJour) error {
	return r.db.Save(jour).Error
}

// UpdateAbsenceType sets the absence code on one day (nil clears it)
func (r *FicheJourRepository) UpdateAbsenceType(id uuid.UUID, code *models.AbsenceType) error {
	return r.db.Model(&models.FicheJour{}).Where("id = ?", id).
		Updates(map[string]interface{}{"type_absence": code, "updated_at": time.Now()}).Error
}

// BulkUpdateTrajetCode sets the trajet code on every given day id in a
// single statement (nil clears it)
func (r *FicheJourRepository) BulkUpdateTrajetCode(ids []uuid.UUID, code *models.TrajetCode) error {
	return r.db.Model(&models.FicheJour{}).Where("id IN ?", ids).
		Updates(map[string]interface{}{"trajet_code": code, "updated_at": time.Now()}).Error
}

// Delete deletes a fiche day
func (r *FicheJourRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FicheJour{}, "id = ?", id).Error
}

// DeleteByFicheID deletes all day rows of a fiche (children before parent)
func (r *FicheJourRepository) DeleteByFicheID(ficheID uuid.UUID) error {
	return r.db.Delete(&models.FicheJour{}, "fiche_id = ?", ficheID).Error
}

// CountByFicheID counts the remaining day rows of a fiche
func (r *FicheJourRepository) CountByFicheID(ficheID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.FicheJour{}).Where("fiche_id = ?", ficheID).Count(&count).Error
	return count, err
}
