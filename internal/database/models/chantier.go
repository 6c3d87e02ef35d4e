package models

import (
	"github.com/google/uuid"
)

// Chantier is a worksite.
type Chantier struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_chantiers_company_code" validate:"required"`
	Code      string    `json:"code" gorm:"size:20;not null;uniqueIndex:idx_chantiers_company_code" validate:"required,min=1,max=20"`
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	City      string    `json:"city" gorm:"size:100" validate:"max=100"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Chantier
func (Chantier) TableName() string {
	return "chantiers"
}
