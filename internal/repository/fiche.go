package repository

import (
	"errors"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FicheRepository handles database operations for fiches
type FicheRepository struct {
	db *gorm.DB
}

// NewFicheRepository creates a new fiche repository
func NewFicheRepository(db *gorm.DB) *FicheRepository {
	return &FicheRepository{db: db}
}

// CreateWithJours creates a fiche and its seeded day rows in one
// transaction, after re-checking that no fiche exists for the employee and
// week. The check and the inserts share the transaction so two concurrent
// creations cannot both pass the duplicate check.
func (r *FicheRepository) CreateWithJours(fiche *models.Fiche, jours []models.FicheJour) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Fiche{}).
			Where("company_id = ? AND employee_id = ? AND week = ?", fiche.CompanyID, fiche.EmployeeID, fiche.Week).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateAssignment
		}
		if err := tx.Create(fiche).Error; err != nil {
			return err
		}
		for i := range jours {
			jours[i].FicheID = fiche.ID
		}
		return tx.Create(&jours).Error
	})
}

// GetByID retrieves a fiche by ID
func (r *FicheRepository) GetByID(id uuid.UUID) (*models.Fiche, error) {
	var fiche models.Fiche
	err := r.db.First(&fiche, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fiche, nil
}

// GetWithJours retrieves a fiche with its day rows ordered by date
func (r *FicheRepository) GetWithJours(id uuid.UUID) (*models.Fiche, error) {
	var fiche models.Fiche
	err := r.db.Preload("Jours", func(db *gorm.DB) *gorm.DB {
		return db.Order("date")
	}).First(&fiche, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fiche, nil
}

// GetByEmployeeAndWeek retrieves the employee's fiche for a week,
// regardless of chantier. Returns gorm.ErrRecordNotFound when none exists.
func (r *FicheRepository) GetByEmployeeAndWeek(companyID, employeeID uuid.UUID, week string) (*models.Fiche, error) {
	var fiche models.Fiche
	err := r.db.First(&fiche, "company_id = ? AND employee_id = ? AND week = ?", companyID, employeeID, week).Error
	if err != nil {
		return nil, err
	}
	return &fiche, nil
}

// ExistsForEmployeeAndWeek reports whether the employee already has a fiche
// for the week, any chantier.
func (r *FicheRepository) ExistsForEmployeeAndWeek(companyID, employeeID uuid.UUID, week string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Fiche{}).
		Where("company_id = ? AND employee_id = ? AND week = ?", companyID, employeeID, week).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByChantierAndWeek retrieves all fiches for a chantier and week. This
// resolves the signable (chantier, week) batch to its member fiches.
func (r *FicheRepository) GetByChantierAndWeek(companyID, chantierID uuid.UUID, week string) ([]models.Fiche, error) {
	var fiches []models.Fiche
	err := r.db.Where("company_id = ? AND chantier_id = ? AND week = ?", companyID, chantierID, week).
		Order("created_at").Find(&fiches).Error
	if err != nil {
		return nil, err
	}
	return fiches, nil
}

// GetByWeek retrieves all fiches for a week across the company, ordered by
// creation time (roll-forward dedupes on first-seen employee).
func (r *FicheRepository) GetByWeek(companyID uuid.UUID, week string) ([]models.Fiche, error) {
	var fiches []models.Fiche
	err := r.db.Where("company_id = ? AND week = ?", companyID, week).
		Order("created_at").Find(&fiches).Error
	if err != nil {
		return nil, err
	}
	return fiches, nil
}

// GetByEmployeeChantierWeekAndStatuses retrieves a member's fiches for a
// chantier and week restricted to the given statuses (crew dissolution
// scope).
func (r *FicheRepository) GetByEmployeeChantierWeekAndStatuses(companyID, employeeID, chantierID uuid.UUID, week string, statuses []models.FicheStatus) ([]models.Fiche, error) {
	var fiches []models.Fiche
	err := r.db.Where("company_id = ? AND employee_id = ? AND chantier_id = ? AND week = ? AND status IN ?",
		companyID, employeeID, chantierID, week, statuses).
		Find(&fiches).Error
	if err != nil {
		return nil, err
	}
	return fiches, nil
}

// GetStatusesForOwnerAndWeek returns the statuses of every fiche sharing
// the (employee, week) pair, filtered by chantier when one is given. Feeds
// the modifiability guard.
func (r *FicheRepository) GetStatusesForOwnerAndWeek(companyID, employeeID uuid.UUID, week string, chantierID *uuid.UUID) ([]models.FicheStatus, error) {
	query := r.db.Model(&models.Fiche{}).
		Where("company_id = ? AND employee_id = ? AND week = ?", companyID, employeeID, week)
	if chantierID != nil {
		query = query.Where("chantier_id = ?", *chantierID)
	}
	var statuses []models.FicheStatus
	if err := query.Pluck("status", &statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// Update updates a fiche
func (r *FicheRepository) Update(fiche *models.Fiche) error {
	return r.db.Save(fiche).Error
}

// UpdateStatus sets the status of a fiche
func (r *FicheRepository) UpdateStatus(id uuid.UUID, status models.FicheStatus) error {
	return r.db.Model(&models.Fiche{}).Where("id = ?", id).Update("status", status).Error
}

// UpdateTotalHours recomputes the declared total from the day rows
func (r *FicheRepository) UpdateTotalHours(id uuid.UUID) error {
	return r.db.Model(&models.Fiche{}).Where("id = ?", id).
		Update("total_hours", r.db.Model(&models.FicheJour{}).
			Select("COALESCE(SUM(heures_normales + heures_intemperies), 0)").
			Where("fiche_id = ?", id)).Error
}

// Delete deletes a fiche. Missing rows are not an error: removal is
// idempotent.
func (r *FicheRepository) Delete(id uuid.UUID) error {
	err := r.db.Delete(&models.Fiche{}, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
