package models

import (
	"time"

	"github.com/google/uuid"
)

// Affectation binds an employee to a chantier over the half-open interval
// [DateDebut, DateFin). DateFin null means currently active.
type Affectation struct {
	BaseModel
	CompanyID  uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	ChantierID uuid.UUID  `json:"chantier_id" gorm:"type:uuid;not null;index" validate:"required"`
	DateDebut  time.Time  `json:"date_debut" gorm:"type:date;not null" validate:"required"`
	DateFin    *time.Time `json:"date_fin" gorm:"type:date"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Chantier Chantier `json:"chantier,omitempty" gorm:"foreignKey:ChantierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Affectation
func (Affectation) TableName() string {
	return "affectations"
}

// IsActive reports whether the assignment is still open.
func (a *Affectation) IsActive() bool {
	return a.DateFin == nil
}
