package models

import (
	"time"

	"github.com/google/uuid"
)

// ClosedPeriod marks a payroll period as formally closed. Any fiche whose
// week overlaps a closed period can no longer be modified, and ENVOYE_RH
// becomes terminal for it.
type ClosedPeriod struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	Label     string    `json:"label" gorm:"size:50;not null" validate:"required,max=50"` // e.g. "2025-10"
	StartDate time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`
	ClosedAt  time.Time `json:"closed_at" gorm:"not null"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ClosedPeriod
func (ClosedPeriod) TableName() string {
	return "closed_periods"
}

// Covers reports whether the date falls inside the closed range, bounds
// included.
func (p *ClosedPeriod) Covers(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}
