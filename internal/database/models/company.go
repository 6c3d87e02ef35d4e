package models

// Company is the tenant. Every domain row references one.
type Company struct {
	BaseModel
	Name  string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Siren string `json:"siren" gorm:"size:9;uniqueIndex" validate:"omitempty,len=9"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
