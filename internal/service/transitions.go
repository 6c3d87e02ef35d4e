package service

import (
	"errors"
	"fmt"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/week"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedTransitions is the fiche status machine:
// BROUILLON -> EN_SIGNATURE -> VALIDE_CHEF -> VALIDE_CONDUCTEUR|AUTO_VALIDE
// -> ENVOYE_RH, plus rejection paths back to BROUILLON. Leaving ENVOYE_RH
// is additionally blocked once the period is closed.
var allowedTransitions = map[models.FicheStatus][]models.FicheStatus{
	models.StatusBrouillon:        {models.StatusEnSignature},
	models.StatusEnSignature:      {models.StatusValideChef, models.StatusBrouillon},
	models.StatusValideChef:       {models.StatusValideConducteur, models.StatusAutoValide, models.StatusBrouillon},
	models.StatusValideConducteur: {models.StatusEnvoyeRH, models.StatusBrouillon},
	models.StatusAutoValide:       {models.StatusEnvoyeRH, models.StatusBrouillon},
	models.StatusEnvoyeRH:         {models.StatusBrouillon},
}

// transitionRoles maps a target status to the roles allowed to request it.
// Rejection back to BROUILLON is a supervisor/HR action; submission is
// open to the owner as well (checked separately).
var transitionRoles = map[models.FicheStatus][]models.EmployeeRole{
	models.StatusEnSignature:      {models.RoleChef, models.RoleConducteur},
	models.StatusValideChef:       {models.RoleChef},
	models.StatusValideConducteur: {models.RoleConducteur},
	models.StatusAutoValide:       {models.RoleConducteur},
	models.StatusEnvoyeRH:         {models.RoleConducteur, models.RoleRH},
	models.StatusBrouillon:        {models.RoleConducteur, models.RoleRH},
}

// canTransition is the pure legality check of the status machine.
func canTransition(from, to models.FicheStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// roleMayRequest is the pure role gate for a target status. The fiche
// owner may submit their own draft.
func roleMayRequest(actor Actor, ownerID uuid.UUID, to models.FicheStatus) bool {
	if to == models.StatusEnSignature && actor.EmployeeID == ownerID {
		return true
	}
	return actor.HasRole(transitionRoles[to]...)
}

// TransitionResult reports a status change.
type TransitionResult struct {
	FicheID    uuid.UUID          `json:"fiche_id"`
	FromStatus models.FicheStatus `json:"from_status"`
	ToStatus   models.FicheStatus `json:"to_status"`
}

// Transition moves a fiche to a new status, enforcing the machine's
// ordering, the actor's role, tenant ownership, and closed-period
// terminality.
func (s *FicheService) Transition(actor Actor, ficheID uuid.UUID, target models.FicheStatus) (*TransitionResult, error) {
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	fiche, err := s.ficheRepo.GetByID(ficheID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFicheNotFound
		}
		return nil, fmt.Errorf("failed to get fiche: %w", err)
	}
	if fiche.CompanyID != actor.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	if !canTransition(fiche.Status, target) {
		return nil, apperrors.NewInvalidTransitionError(string(fiche.Status), string(target))
	}
	if !roleMayRequest(actor, fiche.EmployeeID, target) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}

	// A closed payroll period freezes the whole week: nothing moves in or
	// out, which makes ENVOYE_RH terminal once the period is closed.
	weekID, err := week.Parse(fiche.Week)
	if err != nil {
		return nil, err
	}
	closed, err := s.closedPeriodRepo.AnyOverlapping(fiche.CompanyID, weekID.Monday(), weekID.Friday())
	if err != nil {
		return nil, fmt.Errorf("failed to check closed periods: %w", err)
	}
	if closed {
		return nil, apperrors.ErrPeriodClosed
	}

	if err := s.ficheRepo.UpdateStatus(fiche.ID, target); err != nil {
		return nil, fmt.Errorf("failed to update fiche status: %w", err)
	}

	return &TransitionResult{
		FicheID:    fiche.ID,
		FromStatus: fiche.Status,
		ToStatus:   target,
	}, nil
}

// AutoValidate escalates every VALIDE_CHEF fiche of a chantier's week to
// AUTO_VALIDE. The original runs this as a scheduled default when the
// conducteur does not act in time.
func (s *FicheService) AutoValidate(actor Actor, chantierID uuid.UUID, weekStr string) (int, error) {
	if !actor.HasRole(models.RoleConducteur) {
		return 0, apperrors.ErrActorRoleNotAllowed
	}
	weekID, err := week.Parse(weekStr)
	if err != nil {
		return 0, apperrors.NewValidationError("week", err.Error())
	}

	fiches, err := s.ficheRepo.GetByChantierAndWeek(actor.CompanyID, chantierID, weekID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to list fiches: %w", err)
	}

	// Only VALIDE_CHEF fiches are candidates; the attempted count of a
	// partial failure must reflect them, not the whole week.
	candidates := make([]models.Fiche, 0, len(fiches))
	for _, f := range fiches {
		if f.Status == models.StatusValideChef {
			candidates = append(candidates, f)
		}
	}

	escalated := 0
	for _, f := range candidates {
		if err := s.ficheRepo.UpdateStatus(f.ID, models.StatusAutoValide); err != nil {
			return escalated, apperrors.NewPartialCascadeError("auto-validation", escalated, len(candidates), err)
		}
		escalated++
	}
	return escalated, nil
}
