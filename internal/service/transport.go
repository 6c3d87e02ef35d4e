package service

import (
	"errors"
	"fmt"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/logger"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/week"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransportService handles vehicle assignment to fiche days
type TransportService struct {
	transportRepo *repository.TransportRepository
	jourRepo      *repository.FicheJourRepository
	ficheRepo     *repository.FicheRepository
	employeeRepo  *repository.EmployeeRepository
	validator     *validator.Validate
}

// NewTransportService creates a new transport service
func NewTransportService(
	transportRepo *repository.TransportRepository,
	jourRepo *repository.FicheJourRepository,
	ficheRepo *repository.FicheRepository,
	employeeRepo *repository.EmployeeRepository,
	validator *validator.Validate,
) *TransportService {
	return &TransportService{
		transportRepo: transportRepo,
		jourRepo:      jourRepo,
		ficheRepo:     ficheRepo,
		employeeRepo:  employeeRepo,
		validator:     validator,
	}
}

// AssignJourRequest assigns a vehicle and driver to one fiche day
type AssignJourRequest struct {
	CompanyID   uuid.UUID `json:"company_id" validate:"required"`
	FicheJourID uuid.UUID `json:"fiche_jour_id" validate:"required"`
	VehicleID   uuid.UUID `json:"vehicle_id" validate:"required"`
	DriverID    uuid.UUID `json:"driver_id" validate:"required"`
}

// AssignJour records the vehicle and driver of a fiche day. A day carries
// at most one record: assigning again replaces the previous one. Assigning
// a vehicle already used elsewhere the same date is refused with the
// conflicting record, so the caller can show where the vehicle is.
func (s *TransportService) AssignJour(req *AssignJourRequest) (*models.TransportJour, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	jour, err := s.jourRepo.GetByID(req.FicheJourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFicheJourNotFound
		}
		return nil, fmt.Errorf("failed to get fiche day: %w", err)
	}
	if jour.CompanyID != req.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	vehicle, err := s.transportRepo.GetVehicleByID(req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if vehicle.CompanyID != req.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	driver, err := s.employeeRepo.GetByID(req.DriverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	if driver.CompanyID != req.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	// Same vehicle, same date, different day row: conflict. The day's own
	// record does not count, since it is about to be replaced.
	existing, err := s.transportRepo.GetJoursByVehicleAndDate(req.CompanyID, req.VehicleID, jour.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check vehicle availability: %w", err)
	}
	for i := range existing {
		if existing[i].FicheJourID != req.FicheJourID {
			return nil, apperrors.ErrDuplicateVehicleAssignment
		}
	}

	fiche, err := s.ficheRepo.GetByID(jour.FicheID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fiche: %w", err)
	}
	var chantierID uuid.UUID
	if fiche.ChantierID != nil {
		chantierID = *fiche.ChantierID
	}

	if err := s.transportRepo.DeleteJourByFicheJourID(req.FicheJourID); err != nil {
		return nil, fmt.Errorf("failed to replace transport record: %w", err)
	}
	record := &models.TransportJour{
		CompanyID:   req.CompanyID,
		FicheJourID: req.FicheJourID,
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		Date:        jour.Date,
		ChantierID:  chantierID,
	}
	if err := s.transportRepo.CreateJour(record); err != nil {
		return nil, fmt.Errorf("failed to create transport record: %w", err)
	}
	return record, nil
}

// UnassignJour removes the transport record of a fiche day. Missing record
// is not an error.
func (s *TransportService) UnassignJour(companyID, ficheJourID uuid.UUID) error {
	record, err := s.transportRepo.GetJourByFicheJourID(ficheJourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get transport record: %w", err)
	}
	if record.CompanyID != companyID {
		return apperrors.ErrCompanyMismatch
	}
	return s.transportRepo.DeleteJour(record.ID)
}

// ListByChantierAndDate lists the transport records of a chantier on a date
func (s *TransportService) ListByChantierAndDate(companyID, chantierID uuid.UUID, dateStr string) ([]models.TransportJour, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, apperrors.NewValidationError("date", err.Error())
	}
	return s.transportRepo.GetJoursByChantierAndDate(companyID, chantierID, date)
}

// PurgeWeekResult reports a transport week purge.
type PurgeWeekResult struct {
	Week         string `json:"week"`
	DeletedCount int64  `json:"deleted_count"`
}

// PurgeWeek wipes every transport record of the company's week. Admin
// maintenance operation; returns how many rows went.
func (s *TransportService) PurgeWeek(actor Actor, weekStr string) (*PurgeWeekResult, error) {
	if !actor.HasRole(models.RoleAdmin) {
		return nil, apperrors.ErrActorRoleNotAllowed
	}
	weekID, err := week.Parse(weekStr)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}
	deleted, err := s.transportRepo.DeleteJoursByWeek(actor.CompanyID, weekID.Monday(), weekID.Friday())
	if err != nil {
		return nil, fmt.Errorf("failed to purge transport week: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{
		"company": actor.CompanyID,
		"week":    weekID.String(),
		"deleted": deleted,
	}).Info("transport week purged")
	return &PurgeWeekResult{Week: weekID.String(), DeletedCount: deleted}, nil
}

// CreateVehicleRequest registers a company vehicle
type CreateVehicleRequest struct {
	CompanyID       uuid.UUID `json:"company_id" validate:"required"`
	Immatriculation string    `json:"immatriculation" validate:"required,min=1,max=15"`
	Label           string    `json:"label" validate:"max=100"`
}

// CreateVehicle registers a vehicle
func (s *TransportService) CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	vehicle := &models.Vehicle{
		CompanyID:       req.CompanyID,
		Immatriculation: req.Immatriculation,
		Label:           req.Label,
		IsActive:        true,
	}
	if err := s.transportRepo.CreateVehicle(vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles lists a company's vehicles
func (s *TransportService) ListVehicles(companyID uuid.UUID) ([]models.Vehicle, error) {
	return s.transportRepo.GetVehiclesByCompanyID(companyID)
}
