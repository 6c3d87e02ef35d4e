package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a company vehicle available for crew transport.
type Vehicle struct {
	BaseModel
	CompanyID       uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_vehicles_company_immat" validate:"required"`
	Immatriculation string    `json:"immatriculation" gorm:"size:15;not null;uniqueIndex:idx_vehicles_company_immat" validate:"required,min=1,max=15"`
	Label           string    `json:"label" gorm:"size:100" validate:"max=100"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}

// TransportJour records the vehicle and driver for one fiche day (1:1).
type TransportJour struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FicheJourID uuid.UUID `json:"fiche_jour_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	VehicleID   uuid.UUID `json:"vehicle_id" gorm:"type:uuid;not null;index:idx_transport_vehicle_date" validate:"required"`
	DriverID    uuid.UUID `json:"driver_id" gorm:"type:uuid;not null" validate:"required"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index:idx_transport_vehicle_date" validate:"required"`
	ChantierID  uuid.UUID `json:"chantier_id" gorm:"type:uuid;not null" validate:"required"`

	// Relationships
	FicheJour FicheJour `json:"fiche_jour,omitempty" gorm:"foreignKey:FicheJourID;constraint:OnDelete:CASCADE"`
	Vehicle   Vehicle   `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Driver    Employee  `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
}

// TableName returns the table name for TransportJour
func (TransportJour) TableName() string {
	return "transports_jours"
}
