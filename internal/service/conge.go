package service

import (
	"errors"
	"fmt"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CongeService handles the leave request lifecycle
type CongeService struct {
	congeRepo    *repository.DemandeCongeRepository
	employeeRepo *repository.EmployeeRepository
	validator    *validator.Validate
}

// NewCongeService creates a new leave request service
func NewCongeService(
	congeRepo *repository.DemandeCongeRepository,
	employeeRepo *repository.EmployeeRepository,
	validator *validator.Validate,
) *CongeService {
	return &CongeService{
		congeRepo:    congeRepo,
		employeeRepo: employeeRepo,
		validator:    validator,
	}
}

// CreateCongeRequest represents the request to create a leave request
type CreateCongeRequest struct {
	Type      models.CongeType `json:"type" validate:"required"`
	DateDebut string           `json:"date_debut" validate:"required"`
	DateFin   string           `json:"date_fin" validate:"required"`
	Comment   string           `json:"comment"`
}

// Create opens a leave request in EN_ATTENTE for the acting employee
func (s *CongeService) Create(actor Actor, req *CreateCongeRequest) (*models.DemandeConge, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown leave type")
	}
	debut, err := parseDate(req.DateDebut)
	if err != nil {
		return nil, apperrors.NewValidationError("date_debut", err.Error())
	}
	fin, err := parseDate(req.DateFin)
	if err != nil {
		return nil, apperrors.NewValidationError("date_fin", err.Error())
	}
	if fin.Before(debut) {
		return nil, apperrors.NewValidationError("date_fin", "must not be before date_debut")
	}

	demande := &models.DemandeConge{
		CompanyID:       actor.CompanyID,
		EmployeeID:      actor.EmployeeID,
		Type:            req.Type,
		Status:          models.CongeEnAttente,
		DateDebut:       debut,
		DateFin:         fin,
		Comment:         req.Comment,
		ReadByRequester: true,
	}
	if err := s.congeRepo.Create(demande); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return demande, nil
}

// ValidateByConducteur moves an EN_ATTENTE request to VALIDEE_CONDUCTEUR
func (s *CongeService) ValidateByConducteur(actor Actor, id uuid.UUID) (*models.DemandeConge, error) {
	if !actor.HasRole(models.RoleConducteur) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}
	return s.decide(actor, id, models.CongeEnAttente, models.CongeValideeConducteur, "")
}

// ValidateByRH moves a VALIDEE_CONDUCTEUR request to VALIDEE_RH
func (s *CongeService) ValidateByRH(actor Actor, id uuid.UUID) (*models.DemandeConge, error) {
	if !actor.HasRole(models.RoleRH) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}
	return s.decide(actor, id, models.CongeValideeConducteur, models.CongeValideeRH, "")
}

// Refuse rejects a request from either pre-terminal state, with a reason
func (s *CongeService) Refuse(actor Actor, id uuid.UUID, reason string) (*models.DemandeConge, error) {
	if !actor.HasRole(models.RoleConducteur, models.RoleRH) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}
	if reason == "" {
		return nil, apperrors.NewValidationError("reason", "a refusal requires a reason")
	}

	demande, err := s.get(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if demande.Status.IsTerminal() {
		return nil, apperrors.NewInvalidTransitionError(string(demande.Status), string(models.CongeRefusee))
	}

	demande.Status = models.CongeRefusee
	demande.RefusalReason = reason
	demande.ReadByRequester = false
	if err := s.congeRepo.Update(demande); err != nil {
		return nil, fmt.Errorf("failed to refuse leave request: %w", err)
	}
	return demande, nil
}

// decide applies one forward step of the leave lifecycle. Every decision
// resets the requester's read flag so the employee sees it.
func (s *CongeService) decide(actor Actor, id uuid.UUID, from, to models.CongeStatus, reason string) (*models.DemandeConge, error) {
	demande, err := s.get(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if demande.Status != from {
		return nil, apperrors.NewInvalidTransitionError(string(demande.Status), string(to))
	}

	demande.Status = to
	demande.RefusalReason = reason
	demande.ReadByRequester = false
	if err := s.congeRepo.Update(demande); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}
	return demande, nil
}

// MarkRead marks a decision as seen by its requester
func (s *CongeService) MarkRead(actor Actor, id uuid.UUID) error {
	demande, err := s.get(actor.CompanyID, id)
	if err != nil {
		return err
	}
	if demande.EmployeeID != actor.EmployeeID {
		return apperrors.ErrCompanyMismatch
	}
	return s.congeRepo.MarkRead(id)
}

// UnreadCount counts the actor's unseen decisions
func (s *CongeService) UnreadCount(actor Actor) (int64, error) {
	return s.congeRepo.CountUnreadByEmployee(actor.CompanyID, actor.EmployeeID)
}

// ListByEmployee returns an employee's leave requests, newest first
func (s *CongeService) ListByEmployee(companyID, employeeID uuid.UUID) ([]models.DemandeConge, error) {
	return s.congeRepo.GetByEmployee(companyID, employeeID)
}

// ListByStatus returns the company's leave requests in one status
func (s *CongeService) ListByStatus(companyID uuid.UUID, status models.CongeStatus) ([]models.DemandeConge, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown leave status")
	}
	return s.congeRepo.GetByCompanyAndStatus(companyID, status)
}

func (s *CongeService) get(companyID, id uuid.UUID) (*models.DemandeConge, error) {
	demande, err := s.congeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDemandeCongeNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if demande.CompanyID != companyID {
		return nil, apperrors.ErrCompanyMismatch
	}
	return demande, nil
}
