package service

import (
	"errors"
	"fmt"
	"time"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/week"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FicheService handles business logic for weekly fiches and their days
type FicheService struct {
	ficheRepo        *repository.FicheRepository
	jourRepo         *repository.FicheJourRepository
	signatureRepo    *repository.SignatureRepository
	closedPeriodRepo *repository.ClosedPeriodRepository
	employeeRepo     *repository.EmployeeRepository
	chantierRepo     *repository.ChantierRepository
	validator        *validator.Validate

	// Declared hours seeded on a fresh fiche, Monday through Friday.
	defaultDailyHours [week.DaysPerFiche]float64
}

// NewFicheService creates a new fiche service
func NewFicheService(
	ficheRepo *repository.FicheRepository,
	jourRepo *repository.FicheJourRepository,
	signatureRepo *repository.SignatureRepository,
	closedPeriodRepo *repository.ClosedPeriodRepository,
	employeeRepo *repository.EmployeeRepository,
	chantierRepo *repository.ChantierRepository,
	validator *validator.Validate,
	defaultDailyHours [week.DaysPerFiche]float64,
) *FicheService {
	return &FicheService{
		ficheRepo:         ficheRepo,
		jourRepo:          jourRepo,
		signatureRepo:     signatureRepo,
		closedPeriodRepo:  closedPeriodRepo,
		employeeRepo:      employeeRepo,
		chantierRepo:      chantierRepo,
		validator:         validator,
		defaultDailyHours: defaultDailyHours,
	}
}

// CreateFicheRequest represents the request to create a fiche
type CreateFicheRequest struct {
	CompanyID   uuid.UUID  `json:"company_id" validate:"required"`
	EmployeeID  uuid.UUID  `json:"employee_id" validate:"required"`
	ChantierID  uuid.UUID  `json:"chantier_id" validate:"required"`
	Week        string     `json:"week" validate:"required"`
	CreatedByID *uuid.UUID `json:"created_by_id,omitempty"`
}

// FicheJourResponse represents one day of a fiche
type FicheJourResponse struct {
	ID                uuid.UUID           `json:"id"`
	Date              string              `json:"date"`
	HeuresNormales    float64             `json:"heures_normales"`
	HeuresIntemperies float64             `json:"heures_intemperies"`
	NbTrajets         int                 `json:"nb_trajets"`
	Panier            bool                `json:"panier"`
	TrajetCode        *models.TrajetCode  `json:"trajet_code,omitempty"`
	TrajetPersonnel   bool                `json:"trajet_personnel"`
	TypeAbsence       *models.AbsenceType `json:"type_absence,omitempty"`
	IsAbsent          bool                `json:"is_absent"`
	ChantierCode      string              `json:"chantier_code,omitempty"`
	ChantierCity      string              `json:"chantier_city,omitempty"`
	Regularisation    string              `json:"regularisation,omitempty"`
	ElementsDivers    string              `json:"elements_divers,omitempty"`
}

// FicheResponse represents the response for fiche operations
type FicheResponse struct {
	ID         uuid.UUID           `json:"id"`
	CompanyID  uuid.UUID           `json:"company_id"`
	EmployeeID uuid.UUID           `json:"employee_id"`
	ChantierID *uuid.UUID          `json:"chantier_id,omitempty"`
	Week       string              `json:"week"`
	Status     models.FicheStatus  `json:"status"`
	TotalHours float64             `json:"total_hours"`
	Jours      []FicheJourResponse `json:"jours,omitempty"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// Create creates a fiche and seeds its five weekday rows. An employee may
// hold only one fiche per week, whatever the chantier; violating that
// fails with DuplicateAssignment before anything is written.
func (s *FicheService) Create(req *CreateFicheRequest) (*FicheResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	weekID, err := week.Parse(req.Week)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}

	// Validate employee exists
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

	// Validate chantier exists
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

	chantierID := req.ChantierID
	fiche := &models.Fiche{
		CompanyID:   req.CompanyID,
		EmployeeID:  req.EmployeeID,
		ChantierID:  &chantierID,
		Week:        weekID.String(),
		Status:      models.StatusBrouillon,
		TotalHours:  s.defaultWeekTotal(),
		CreatedByID: req.CreatedByID,
	}
	jours := s.buildDefaultJours(weekID, req.CompanyID, chantier)

	if err := s.ficheRepo.CreateWithJours(fiche, jours); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create fiche: %w", err)
	}

	fiche.Jours = jours
	return s.toResponse(fiche, true), nil
}

// buildDefaultJours seeds the five weekday rows: per-weekday default
// hours, one trajet, panier on, and the A_COMPLETER sentinel telling HR
// the commute still has to be classified.
func (s *FicheService) buildDefaultJours(weekID week.ID, companyID uuid.UUID, chantier *models.Chantier) []models.FicheJour {
	sentinel := models.TrajetACompleter
	dates := weekID.Weekdays()

	jours := make([]models.FicheJour, week.DaysPerFiche)
	for i, date := range dates {
		jour := models.FicheJour{
			CompanyID:      companyID,
			Date:           date,
			HeuresNormales: s.defaultDailyHours[i],
			NbTrajets:      1,
			Panier:         true,
			TrajetCode:     &sentinel,
		}
		if chantier != nil {
			jour.ChantierCode = chantier.Code
			jour.ChantierCity = chantier.City
		}
		jours[i] = jour
	}
	return jours
}

func (s *FicheService) defaultWeekTotal() float64 {
	var total float64
	for _, h := range s.defaultDailyHours {
		total += h
	}
	return total
}

// GetByID retrieves a fiche with its days
func (s *FicheService) GetByID(companyID, id uuid.UUID) (*FicheResponse, error) {
	fiche, err := s.ficheRepo.GetWithJours(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFicheNotFound
		}
		return nil, fmt.Errorf("failed to get fiche: %w", err)
	}
	if fiche.CompanyID != companyID {
		return nil, apperrors.ErrCompanyMismatch
	}
	return s.toResponse(fiche, true), nil
}

// GetByChantierAndWeek lists the fiches of one chantier's week
func (s *FicheService) GetByChantierAndWeek(companyID, chantierID uuid.UUID, weekStr string) ([]FicheResponse, error) {
	weekID, err := week.Parse(weekStr)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}
	fiches, err := s.ficheRepo.GetByChantierAndWeek(companyID, chantierID, weekID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list fiches: %w", err)
	}
	responses := make([]FicheResponse, len(fiches))
	for i := range fiches {
		responses[i] = *s.toResponse(&fiches[i], false)
	}
	return responses, nil
}

// RemoveEmployee deletes a fiche and its days, children first. A missing
// fiche is treated as success: removal is idempotent. Fiches that already
// carry signatures are refused; this is a pre-validation operation.
func (s *FicheService) RemoveEmployee(companyID, ficheID uuid.UUID) error {
	fiche, err := s.ficheRepo.GetByID(ficheID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get fiche: %w", err)
	}
	if fiche.CompanyID != companyID {
		return apperrors.ErrCompanyMismatch
	}

	signatures, err := s.signatureRepo.CountByFicheID(ficheID)
	if err != nil {
		return fmt.Errorf("failed to count signatures: %w", err)
	}
	if signatures > 0 {
		return apperrors.ErrFicheHasSignatures
	}

	if err := s.jourRepo.DeleteByFicheID(ficheID); err != nil {
		return fmt.Errorf("failed to delete fiche days: %w", err)
	}
	if err := s.ficheRepo.Delete(ficheID); err != nil {
		return fmt.Errorf("failed to delete fiche: %w", err)
	}
	return nil
}

// RemoveJour revokes one day of an assignment. The parent fiche is deleted
// when its last day goes.
func (s *FicheService) RemoveJour(companyID, jourID uuid.UUID) error {
	jour, err := s.jourRepo.GetByID(jourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get fiche day: %w", err)
	}
	if jour.CompanyID != companyID {
		return apperrors.ErrCompanyMismatch
	}

	if err := s.jourRepo.Delete(jourID); err != nil {
		return fmt.Errorf("failed to delete fiche day: %w", err)
	}

	remaining, err := s.jourRepo.CountByFicheID(jour.FicheID)
	if err != nil {
		return fmt.Errorf("failed to count remaining days: %w", err)
	}
	if remaining == 0 {
		return s.RemoveEmployee(companyID, jour.FicheID)
	}
	return s.ficheRepo.UpdateTotalHours(jour.FicheID)
}

// UpdateJourRequest represents a partial update of one fiche day
type UpdateJourRequest struct {
	HeuresNormales    *float64 `json:"heures_normales,omitempty"`
	HeuresIntemperies *float64 `json:"heures_intemperies,omitempty"`
	NbTrajets         *int     `json:"nb_trajets,omitempty"`
	Panier            *bool    `json:"panier,omitempty"`
	TrajetPersonnel   *bool    `json:"trajet_personnel,omitempty"`
	Regularisation    *string  `json:"regularisation,omitempty"`
	ElementsDivers    *string  `json:"elements_divers,omitempty"`
}

// UpdateJour edits one day's fields after checking bounds and the
// editability guard. The fiche total is recomputed after the write.
func (s *FicheService) UpdateJour(companyID, jourID uuid.UUID, req *UpdateJourRequest) (*FicheJourResponse, error) {
	if err := validateJourBounds(req); err != nil {
		return nil, err
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

	if req.HeuresNormales != nil {
		jour.HeuresNormales = *req.HeuresNormales
	}
	if req.HeuresIntemperies != nil {
		jour.HeuresIntemperies = *req.HeuresIntemperies
	}
	if req.NbTrajets != nil {
		jour.NbTrajets = *req.NbTrajets
	}
	if req.Panier != nil {
		jour.Panier = *req.Panier
	}
	if req.TrajetPersonnel != nil {
		jour.TrajetPersonnel = *req.TrajetPersonnel
	}
	if req.Regularisation != nil {
		jour.Regularisation = *req.Regularisation
	}
	if req.ElementsDivers != nil {
		jour.ElementsDivers = *req.ElementsDivers
	}

	if err := s.jourRepo.Update(jour); err != nil {
		return nil, fmt.Errorf("failed to update fiche day: %w", err)
	}
	if err := s.ficheRepo.UpdateTotalHours(jour.FicheID); err != nil {
		return nil, fmt.Errorf("failed to update fiche totals: %w", err)
	}

	resp := s.toJourResponse(jour)
	return &resp, nil
}

// validateJourBounds rejects out-of-range numerics before any write.
func validateJourBounds(req *UpdateJourRequest) error {
	if req.HeuresNormales != nil && (*req.HeuresNormales < 0 || *req.HeuresNormales > models.MaxDailyHours) {
		return apperrors.NewValidationError("heures_normales", "must be between 0 and 24")
	}
	if req.HeuresIntemperies != nil && (*req.HeuresIntemperies < 0 || *req.HeuresIntemperies > models.MaxDailyHours) {
		return apperrors.NewValidationError("heures_intemperies", "must be between 0 and 24")
	}
	if req.NbTrajets != nil && (*req.NbTrajets < 0 || *req.NbTrajets > models.MaxTrajetCount) {
		return apperrors.NewValidationError("nb_trajets", "must be between 0 and 10")
	}
	return nil
}

// toResponse converts a fiche model to response
func (s *FicheService) toResponse(fiche *models.Fiche, withJours bool) *FicheResponse {
	response := &FicheResponse{
		ID:         fiche.ID,
		CompanyID:  fiche.CompanyID,
		EmployeeID: fiche.EmployeeID,
		ChantierID: fiche.ChantierID,
		Week:       fiche.Week,
		Status:     fiche.Status,
		TotalHours: fiche.TotalHours,
		CreatedAt:  fiche.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  fiche.UpdatedAt.Format(time.RFC3339),
	}
	if withJours {
		response.Jours = make([]FicheJourResponse, len(fiche.Jours))
		for i := range fiche.Jours {
			response.Jours[i] = s.toJourResponse(&fiche.Jours[i])
		}
	}
	return response
}

func (s *FicheService) toJourResponse(jour *models.FicheJour) FicheJourResponse {
	return FicheJourResponse{
		ID:                jour.ID,
		Date:              jour.Date.Format("2006-01-02"),
		HeuresNormales:    jour.HeuresNormales,
		HeuresIntemperies: jour.HeuresIntemperies,
		NbTrajets:         jour.NbTrajets,
		Panier:            jour.Panier,
		TrajetCode:        jour.TrajetCode,
		TrajetPersonnel:   jour.TrajetPersonnel,
		TypeAbsence:       jour.TypeAbsence,
		IsAbsent:          jour.IsAbsent(),
		ChantierCode:      jour.ChantierCode,
		ChantierCity:      jour.ChantierCity,
		Regularisation:    jour.Regularisation,
		ElementsDivers:    jour.ElementsDivers,
	}
}
