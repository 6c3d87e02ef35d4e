package models

import (
	"time"

	"github.com/google/uuid"
)

// DemandeConge is a leave request with its own small lifecycle:
// EN_ATTENTE -> VALIDEE_CONDUCTEUR -> VALIDEE_RH, refusable from either
// pre-terminal state.
type DemandeConge struct {
	BaseModel
	CompanyID     uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID    uuid.UUID   `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type          CongeType   `json:"type" gorm:"type:varchar(15);not null" validate:"required"`
	Status        CongeStatus `json:"status" gorm:"type:varchar(25);not null;default:'EN_ATTENTE'"`
	DateDebut     time.Time   `json:"date_debut" gorm:"type:date;not null" validate:"required"`
	DateFin       time.Time   `json:"date_fin" gorm:"type:date;not null" validate:"required"`
	Comment       string      `json:"comment" gorm:"type:text"`
	RefusalReason string      `json:"refusal_reason" gorm:"type:text"`

	// Read tracking for the requester: reset on every status change so the
	// employee sees the decision.
	ReadByRequester bool `json:"read_by_requester" gorm:"default:true"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DemandeConge
func (DemandeConge) TableName() string {
	return "demandes_conges"
}
