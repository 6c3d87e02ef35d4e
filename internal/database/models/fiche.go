package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Fiche is one employee's declared work for one chantier for one week.
//
// Uniqueness per (employee, week) is enforced by the service inside the
// creation transaction, not by a database constraint: an unassigned roster
// entry (ChantierID null) and a later assigned fiche would collide on a
// plain unique index.
type Fiche struct {
	BaseModel
	CompanyID   uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID  uuid.UUID   `json:"employee_id" gorm:"type:uuid;not null;index:idx_fiches_employee_week" validate:"required"`
	ChantierID  *uuid.UUID  `json:"chantier_id" gorm:"type:uuid;index"` // null = unassigned roster entry
	Week        string      `json:"week" gorm:"size:8;not null;index:idx_fiches_employee_week" validate:"required"` // "2025-S43"
	Status      FicheStatus `json:"status" gorm:"type:varchar(20);not null;default:'BROUILLON';index" validate:"required"`
	TotalHours  float64     `json:"total_hours" gorm:"not null;default:0" validate:"min=0"`
	CreatedByID *uuid.UUID  `json:"created_by_id" gorm:"type:uuid"`

	// Free-text payroll fields
	Acomptes      string `json:"acomptes" gorm:"type:text"`
	Prets         string `json:"prets" gorm:"type:text"`
	CommentaireRH string `json:"commentaire_rh" gorm:"type:text"`
	NotePaie      string `json:"note_paie" gorm:"type:text"`

	// Per-field export overrides applied when handing the week to payroll
	ExportOverrides json.RawMessage `json:"export_overrides" gorm:"type:jsonb"`

	// Relationships
	Company    Company     `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Employee   Employee    `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Chantier   *Chantier   `json:"chantier,omitempty" gorm:"foreignKey:ChantierID"`
	Jours      []FicheJour `json:"jours,omitempty" gorm:"foreignKey:FicheID"`
	Signatures []Signature `json:"signatures,omitempty" gorm:"foreignKey:FicheID"`
}

// TableName returns the table name for Fiche
func (Fiche) TableName() string {
	return "fiches"
}
