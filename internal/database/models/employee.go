package models

import (
	"github.com/google/uuid"
)

// Employee represents a workforce member: ouvrier, chef d'équipe,
// conducteur de travaux, RH or admin.
type Employee struct {
	BaseModel
	CompanyID uuid.UUID    `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_employees_company_email" validate:"required"`
	FullName  string       `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email     string       `json:"email" gorm:"size:150;not null;uniqueIndex:idx_employees_company_email" validate:"required,email"`
	Role      EmployeeRole `json:"role" gorm:"type:varchar(20);not null;default:'OUVRIER'" validate:"required"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`

	// bcrypt hash, never serialized
	PasswordHash string `json:"-" gorm:"size:100"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
