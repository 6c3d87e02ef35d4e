package service

import (
	"errors"
	"fmt"
	"time"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/logger"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/week"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewService handles crew assignments: who belongs to which chantier, and
// the bulk operations that move a whole crew between weeks and worksites.
type CrewService struct {
	affectationRepo *repository.AffectationRepository
	ficheRepo       *repository.FicheRepository
	jourRepo        *repository.FicheJourRepository
	signatureRepo   *repository.SignatureRepository
	employeeRepo    *repository.EmployeeRepository
	chantierRepo    *repository.ChantierRepository
	ficheService    *FicheService
	validator       *validator.Validate
}

// NewCrewService creates a new crew service
func NewCrewService(
	affectationRepo *repository.AffectationRepository,
	ficheRepo *repository.FicheRepository,
	jourRepo *repository.FicheJourRepository,
	signatureRepo *repository.SignatureRepository,
	employeeRepo *repository.EmployeeRepository,
	chantierRepo *repository.ChantierRepository,
	ficheService *FicheService,
	validator *validator.Validate,
) *CrewService {
	return &CrewService{
		affectationRepo: affectationRepo,
		ficheRepo:       ficheRepo,
		jourRepo:        jourRepo,
		signatureRepo:   signatureRepo,
		employeeRepo:    employeeRepo,
		chantierRepo:    chantierRepo,
		ficheService:    ficheService,
		validator:       validator,
	}
}

// AssignRequest represents the request to assign an employee to a chantier
type AssignRequest struct {
	CompanyID  uuid.UUID `json:"company_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	ChantierID uuid.UUID `json:"chantier_id" validate:"required"`
	DateDebut  time.Time `json:"date_debut" validate:"required"`
}

// Assign opens an affectation. An employee holds at most one active
// assignment; the previous one is closed the day the new one starts.
func (s *CrewService) Assign(req *AssignRequest) (*models.Affectation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if employee.CompanyID != req.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}
	chantier, err := s.chantierRepo.GetByID(req.ChantierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChantierNotFound
		}
		return nil, fmt.Errorf("failed to verify chantier: %w", err)
	}
	if chantier.CompanyID != req.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	current, err := s.affectationRepo.GetActiveByEmployee(req.CompanyID, req.EmployeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check current assignment: %w", err)
	}
	if current != nil {
		if err := s.affectationRepo.Close(current.ID, req.DateDebut); err != nil {
			return nil, fmt.Errorf("failed to close previous assignment: %w", err)
		}
	}

	affectation := &models.Affectation{
		CompanyID:  req.CompanyID,
		EmployeeID: req.EmployeeID,
		ChantierID: req.ChantierID,
		DateDebut:  req.DateDebut,
	}
	if err := s.affectationRepo.Create(affectation); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return affectation, nil
}

// DissolveResult reports a crew dissolution.
type DissolveResult struct {
	MembersReleased int `json:"members_released"`
	FichesDeleted   int `json:"fiches_deleted"`
}

// dissolvableStatuses are the fiche statuses dissolution removes. Fiches
// past chef validation survive the dissolution untouched.
var dissolvableStatuses = []models.FicheStatus{models.StatusBrouillon, models.StatusValideChef}

// Dissolve releases every member of a chantier's crew except the lead:
// for each member, their early-status fiches of the given week are removed
// (signatures first, then days, then fiche) and their affectation is
// closed as of today. Each step is an overwrite or a tolerant delete, so a
// retry after a mid-loop failure converges; the failure itself surfaces as
// a PartialCascade carrying the progress counts.
func (s *CrewService) Dissolve(actor Actor, chantierID uuid.UUID, weekStr string, leadEmployeeID uuid.UUID) (*DissolveResult, error) {
	if !actor.HasRole(models.RoleConducteur) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}
	weekID, err := week.Parse(weekStr)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}

	members, err := s.affectationRepo.GetActiveByChantier(actor.CompanyID, chantierID, &leadEmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}

	log := logger.New().WithFields(map[string]interface{}{
		"chantier": chantierID,
		"week":     weekID.String(),
		"members":  len(members),
	})
	result := &DissolveResult{}
	today := time.Now().Truncate(24 * time.Hour)
	for _, member := range members {
		fiches, err := s.ficheRepo.GetByEmployeeChantierWeekAndStatuses(
			actor.CompanyID, member.EmployeeID, chantierID, weekID.String(), dissolvableStatuses)
		if err != nil {
			return result, apperrors.NewPartialCascadeError("crew dissolution", result.MembersReleased, len(members), err)
		}
		for _, fiche := range fiches {
			if err := s.deleteFicheCascade(fiche.ID); err != nil {
				return result, apperrors.NewPartialCascadeError("crew dissolution", result.MembersReleased, len(members), err)
			}
			result.FichesDeleted++
		}
		if err := s.affectationRepo.Close(member.ID, today); err != nil {
			return result, apperrors.NewPartialCascadeError("crew dissolution", result.MembersReleased, len(members), err)
		}
		result.MembersReleased++
	}
	log.WithField("fiches_deleted", result.FichesDeleted).Info("crew dissolved")
	return result, nil
}

// deleteFicheCascade removes a fiche bottom-up: signatures, day rows, then
// the fiche itself.
func (s *CrewService) deleteFicheCascade(ficheID uuid.UUID) error {
	if err := s.signatureRepo.DeleteByFicheID(ficheID); err != nil {
		return fmt.Errorf("failed to delete signatures: %w", err)
	}
	if err := s.jourRepo.DeleteByFicheID(ficheID); err != nil {
		return fmt.Errorf("failed to delete fiche days: %w", err)
	}
	if err := s.ficheRepo.Delete(ficheID); err != nil {
		return fmt.Errorf("failed to delete fiche: %w", err)
	}
	return nil
}

// RollForwardResult reports a weekly roster roll-forward.
type RollForwardResult struct {
	Week          string `json:"week"`
	FichesCreated int    `json:"fiches_created"`
}

// RollForward reseeds the target week's roster from the previous week:
// every (employee -> chantier) pair found in the previous week's fiches
// gets a fresh default fiche, unless the employee already has one for the
// target week. Duplicated previous-week pairs collapse to the first seen
// in creation order. Re-running adds nothing; an empty previous week is a
// no-op.
func (s *CrewService) RollForward(actor Actor, weekStr string) (*RollForwardResult, error) {
	if !actor.HasRole(models.RoleConducteur, models.RoleRH) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}
	target, err := week.Parse(weekStr)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}
	previous := target.Previous()

	fiches, err := s.ficheRepo.GetByWeek(actor.CompanyID, previous.String())
	if err != nil {
		return nil, fmt.Errorf("failed to read previous week: %w", err)
	}

	result := &RollForwardResult{Week: target.String()}
	seen := make(map[uuid.UUID]bool)
	for _, prev := range fiches {
		if seen[prev.EmployeeID] || prev.ChantierID == nil {
			continue
		}
		seen[prev.EmployeeID] = true

		exists, err := s.ficheRepo.ExistsForEmployeeAndWeek(actor.CompanyID, prev.EmployeeID, target.String())
		if err != nil {
			return result, fmt.Errorf("failed to check target week: %w", err)
		}
		if exists {
			continue
		}

		_, err = s.ficheService.Create(&CreateFicheRequest{
			CompanyID:   actor.CompanyID,
			EmployeeID:  prev.EmployeeID,
			ChantierID:  *prev.ChantierID,
			Week:        target.String(),
			CreatedByID: &actor.EmployeeID,
		})
		if err != nil {
			// A concurrent creation between the existence check and the
			// insert loses the race inside CreateWithJours; skip and move on.
			if apperrors.IsAlreadyExists(err) {
				continue
			}
			return result, apperrors.NewPartialCascadeError("roster roll-forward", result.FichesCreated, len(fiches), err)
		}
		result.FichesCreated++
	}
	logger.New().WithFields(map[string]interface{}{
		"week":    target.String(),
		"created": result.FichesCreated,
	}).Info("roster rolled forward")
	return result, nil
}

// ListCrew returns the active members of a chantier
func (s *CrewService) ListCrew(companyID, chantierID uuid.UUID) ([]models.Affectation, error) {
	return s.affectationRepo.GetActiveByChantier(companyID, chantierID, nil)
}

// ListAssignments returns an employee's assignment history, newest first
func (s *CrewService) ListAssignments(companyID, employeeID uuid.UUID) ([]models.Affectation, error) {
	return s.affectationRepo.GetByEmployee(companyID, employeeID)
}
