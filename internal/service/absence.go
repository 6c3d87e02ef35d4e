package service

import (
	"errors"
	"fmt"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanAbsencePropagation decides which days of a fiche receive an absence
// code when it is set on one day. The edited day always takes the code;
// propagation then runs forward in date order, overwriting whatever code
// later days carry, and stops at the first day with worked hours. Days
// before the edited one are never touched. Jours must be in date order.
func PlanAbsencePropagation(jours []models.FicheJour, editedID uuid.UUID) []uuid.UUID {
	start := -1
	for i := range jours {
		if jours[i].ID == editedID {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	targets := []uuid.UUID{jours[start].ID}
	for i := start + 1; i < len(jours); i++ {
		if jours[i].IsWorked() {
			break
		}
		targets = append(targets, jours[i].ID)
	}
	return targets
}

// AbsenceResult reports an absence propagation.
type AbsenceResult struct {
	FicheID      uuid.UUID   `json:"fiche_id"`
	DaysUpdated  int         `json:"days_updated"`
	UpdatedJours []uuid.UUID `json:"updated_jours"`
}

// SetAbsenceType applies an absence code to a day and propagates it
// forward through the rest of the week (nil clears the edited day only).
// Writes are sequential, one per day; a mid-run failure surfaces as a
// PartialCascade with the completed count, and a retry converges because
// each write is an overwrite.
func (s *FicheService) SetAbsenceType(companyID, jourID uuid.UUID, code *models.AbsenceType) (*AbsenceResult, error) {
	if code != nil && !code.IsValid() {
		return nil, apperrors.NewValidationError("type_absence", "unknown absence code")
	}

	jour, err := s.jourRepo.GetByID(jourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFicheJourNotFound
		}
		return nil, fmt.Errorf("failed to get fiche day: %w", err)
	}
	if jour.CompanyID != companyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	fiche, err := s.ficheRepo.GetByID(jour.FicheID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fiche: %w", err)
	}

	guard, err := s.CheckModifiable(companyID, fiche.EmployeeID, fiche.Week, fiche.ChantierID)
	if err != nil {
		return nil, err
	}
	if !guard.IsModifiable {
		return nil, &apperrors.AuthorizationError{Message: guard.Reason}
	}

	var targets []uuid.UUID
	if code == nil {
		// Clearing never propagates.
		targets = []uuid.UUID{jourID}
	} else {
		jours, err := s.jourRepo.GetByFicheID(jour.FicheID)
		if err != nil {
			return nil, fmt.Errorf("failed to list fiche days: %w", err)
		}
		targets = PlanAbsencePropagation(jours, jourID)
	}

	for i, id := range targets {
		if err := s.jourRepo.UpdateAbsenceType(id, code); err != nil {
			return nil, apperrors.NewPartialCascadeError("absence propagation", i, len(targets), err)
		}
	}

	return &AbsenceResult{
		FicheID:      jour.FicheID,
		DaysUpdated:  len(targets),
		UpdatedJours: targets,
	}, nil
}
