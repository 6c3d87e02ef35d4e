package repository

import (
	"time"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransportRepository handles database operations for vehicles and
// transport day records
type TransportRepository struct {
	db *gorm.DB
}

// NewTransportRepository creates a new transport repository
func NewTransportRepository(db *gorm.DB) *TransportRepository {
	return &TransportRepository{db: db}
}

// CreateVehicle creates a new vehicle
func (r *TransportRepository) CreateVehicle(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// GetVehicleByID retrieves a vehicle by ID
func (r *TransportRepository) GetVehicleByID(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetVehiclesByCompanyID retrieves all vehicles of a company
func (r *TransportRepository) GetVehiclesByCompanyID(companyID uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Where("company_id = ?", companyID).Order("immatriculation").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateJour creates a transport day record
func (r *TransportRepository) CreateJour(jour *models.TransportJour) error {
	return r.db.Create(jour).Error
}

// GetJourByFicheJourID retrieves the transport record of a fiche day
func (r *TransportRepository) GetJourByFicheJourID(ficheJourID uuid.UUID) (*models.TransportJour, error) {
	var jour models.TransportJour
	err := r.db.First(&jour, "fiche_jour_id = ?", ficheJourID).Error
	if err != nil {
		return nil, err
	}
	return &jour, nil
}

// GetJoursByVehicleAndDate retrieves every transport record of a vehicle
// on a date; feeds the duplicate-vehicle-same-day detection.
func (r *TransportRepository) GetJoursByVehicleAndDate(companyID, vehicleID uuid.UUID, date time.Time) ([]models.TransportJour, error) {
	var jours []models.TransportJour
	err := r.db.Where("company_id = ? AND vehicle_id = ? AND date = ?", companyID, vehicleID, date).
		Find(&jours).Error
	if err != nil {
		return nil, err
	}
	return jours, nil
}

// GetJoursByChantierAndDate lists transport records of a chantier on a date
func (r *TransportRepository) GetJoursByChantierAndDate(companyID, chantierID uuid.UUID, date time.Time) ([]models.TransportJour, error) {
	var jours []models.TransportJour
	err := r.db.Where("company_id = ? AND chantier_id = ? AND date = ?", companyID, chantierID, date).
		Find(&jours).Error
	if err != nil {
		return nil, err
	}
	return jours, nil
}

// DeleteJour deletes a transport day record
func (r *TransportRepository) DeleteJour(id uuid.UUID) error {
	return r.db.Delete(&models.TransportJour{}, "id = ?", id).Error
}

// DeleteJourByFicheJourID deletes the transport record attached to a fiche
// day, if any
func (r *TransportRepository) DeleteJourByFicheJourID(ficheJourID uuid.UUID) error {
	return r.db.Delete(&models.TransportJour{}, "fiche_jour_id = ?", ficheJourID).Error
}

// DeleteJoursByWeek purges every transport record of a company falling
// inside the week's date range. Returns the number of rows removed.
func (r *TransportRepository) DeleteJoursByWeek(companyID uuid.UUID, monday, sunday time.Time) (int64, error) {
	result := r.db.Delete(&models.TransportJour{},
		"company_id = ? AND date >= ? AND date <= ?", companyID, monday, sunday)
	return result.RowsAffected, result.Error
}
