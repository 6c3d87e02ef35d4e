package service

import (
	"fmt"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/week"

	"github.com/google/uuid"
)

// ApplyTrajetCodeRequest is a batch trajet-code update. A nil Code clears
// the code on every target day.
type ApplyTrajetCodeRequest struct {
	JourIDs []uuid.UUID        `json:"jour_ids" validate:"required,min=1"`
	Code    *models.TrajetCode `json:"code,omitempty"`
}

// ApplyTrajetCode sets (or clears) the commute zone code on a batch of
// fiche days in one statement. Clearing is refused when any target day has
// worked hours and no personal-commute flag: those days must keep a code
// for payroll.
func (s *FicheService) ApplyTrajetCode(companyID uuid.UUID, req *ApplyTrajetCodeRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}
	if req.Code != nil && !req.Code.IsValid() {
		return 0, apperrors.NewValidationError("code", "unknown trajet code")
	}

	jours, err := s.jourRepo.GetByIDs(req.JourIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to load fiche days: %w", err)
	}
	if len(jours) != len(req.JourIDs) {
		return 0, apperrors.ErrFicheJourNotFound
	}
	for i := range jours {
		if jours[i].CompanyID != companyID {
			return 0, apperrors.ErrCompanyMismatch
		}
		if req.Code == nil && jours[i].IsWorked() && !jours[i].TrajetPersonnel {
			return 0, apperrors.ErrTrajetCodeRequired
		}
	}

	if err := s.jourRepo.BulkUpdateTrajetCode(req.JourIDs, req.Code); err != nil {
		return 0, fmt.Errorf("failed to update trajet codes: %w", err)
	}
	return len(req.JourIDs), nil
}

// ListWeekJourIDs resolves the "all days this week on this chantier" target
// set for the batch apply.
func (s *FicheService) ListWeekJourIDs(companyID, employeeID, chantierID uuid.UUID, weekStr string) ([]uuid.UUID, error) {
	weekID, err := week.Parse(weekStr)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}
	jours, err := s.jourRepo.GetByEmployeeAndWeekOnChantier(companyID, employeeID, chantierID, weekID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list week days: %w", err)
	}
	ids := make([]uuid.UUID, len(jours))
	for i := range jours {
		ids[i] = jours[i].ID
	}
	return ids, nil
}
