package service

import (
	"fmt"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/week"

	"github.com/google/uuid"
)

// ModifiableResult is the outcome of the editability guard. It is pure
// data: callers check it before mutating, and render Reason when blocked.
// The guard is advisory (read-then-act), not a locking primitive.
type ModifiableResult struct {
	IsModifiable   bool                `json:"is_modifiable"`
	Reason         string              `json:"reason,omitempty"`
	BlockingStatus *models.FicheStatus `json:"blocking_status,omitempty"`
}

// decideModifiable is the pure editability rule: a (week, owner) pair is
// frozen when the week overlaps a closed payroll period, or when any of
// its fiches has reached a blocking status. No fiche at all means
// modifiable.
func decideModifiable(periodClosed bool, statuses []models.FicheStatus) ModifiableResult {
	if periodClosed {
		return ModifiableResult{
			IsModifiable: false,
			Reason:       "the payroll period covering this week is closed",
		}
	}
	for _, s := range statuses {
		if s.IsBlocking() {
			blocking := s
			return ModifiableResult{
				IsModifiable:   false,
				Reason:         fmt.Sprintf("a fiche for this week is already in status %s", s),
				BlockingStatus: &blocking,
			}
		}
	}
	return ModifiableResult{IsModifiable: true}
}

// CheckModifiable reports whether the fiches of (employee, week) may
// currently be edited, with the blocking reason when not. ChantierID
// narrows the check to one worksite when given. Never mutates state.
func (s *FicheService) CheckModifiable(companyID, employeeID uuid.UUID, weekStr string, chantierID *uuid.UUID) (*ModifiableResult, error) {
	weekID, err := week.Parse(weekStr)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}

	closed, err := s.closedPeriodRepo.AnyOverlapping(companyID, weekID.Monday(), weekID.Friday())
	if err != nil {
		return nil, fmt.Errorf("failed to check closed periods: %w", err)
	}

	statuses, err := s.ficheRepo.GetStatusesForOwnerAndWeek(companyID, employeeID, weekID.String(), chantierID)
	if err != nil {
		return nil, fmt.Errorf("failed to read fiche statuses: %w", err)
	}

	result := decideModifiable(closed, statuses)
	return &result, nil
}
