package testutils

import (
	"time"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all entity factories for convenient test setup
type FactorySet struct {
	Company   *CompanyFactory
	Employee  *EmployeeFactory
	Chantier  *ChantierFactory
	Fiche     *FicheFactory
	FicheJour *FicheJourFactory
	Vehicle   *VehicleFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:   NewCompanyFactory(),
		Employee:  NewEmployeeFactory(),
		Chantier:  NewChantierFactory(),
		Fiche:     NewFicheFactory(),
		FicheJour: NewFicheJourFactory(),
		Vehicle:   NewVehicleFactory(),
	}
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "BTP Test SARL",
		// unique-ish 9 digits derived from the uuid to dodge the index
		Siren: fakeSiren(id),
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

func fakeSiren(id uuid.UUID) string {
	digits := make([]byte, 9)
	for i := 0; i < 9; i++ {
		digits[i] = '0' + id[i]%10
	}
	return string(digits)
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values (an active ouvrier)
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		FullName:  "Jean Dupont",
		Email:     "jean." + id.String()[:8] + "@test.fr",
		Role:      models.RoleOuvrier,
		IsActive:  true,
	}
}

// WithCompany sets the company ID for the employee
func (f *EmployeeFactory) WithCompany(companyID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.CompanyID = companyID
	return employee
}

// WithRole sets a custom role for the employee
func (f *EmployeeFactory) WithRole(companyID uuid.UUID, role models.EmployeeRole) *models.Employee {
	employee := f.WithCompany(companyID)
	employee.Role = role
	return employee
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	employee := f.Create()
	employee.Email = email
	return employee
}

// ChantierFactory provides methods to create test Chantier data
type ChantierFactory struct{}

// NewChantierFactory creates a new ChantierFactory
func NewChantierFactory() *ChantierFactory {
	return &ChantierFactory{}
}

// Create creates a test Chantier with default values
func (f *ChantierFactory) Create() *models.Chantier {
	id := uuid.New()
	return &models.Chantier{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		Code:      "CH-" + id.String()[:8],
		Name:      "Chantier Test",
		City:      "Lyon",
		IsActive:  true,
	}
}

// WithCompany sets the company ID for the chantier
func (f *ChantierFactory) WithCompany(companyID uuid.UUID) *models.Chantier {
	chantier := f.Create()
	chantier.CompanyID = companyID
	return chantier
}

// WithCode sets a custom code for the chantier
func (f *ChantierFactory) WithCode(companyID uuid.UUID, code string) *models.Chantier {
	chantier := f.WithCompany(companyID)
	chantier.Code = code
	return chantier
}

// FicheFactory provides methods to create test Fiche data
type FicheFactory struct{}

// NewFicheFactory creates a new FicheFactory
func NewFicheFactory() *FicheFactory {
	return &FicheFactory{}
}

// Create creates a test Fiche in BROUILLON with default values
func (f *FicheFactory) Create(companyID, employeeID uuid.UUID, chantierID *uuid.UUID, week string) *models.Fiche {
	return &models.Fiche{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:  companyID,
		EmployeeID: employeeID,
		ChantierID: chantierID,
		Week:       week,
		Status:     models.StatusBrouillon,
		TotalHours: 39,
	}
}

// WithStatus sets a custom status for the fiche
func (f *FicheFactory) WithStatus(companyID, employeeID uuid.UUID, chantierID *uuid.UUID, week string, status models.FicheStatus) *models.Fiche {
	fiche := f.Create(companyID, employeeID, chantierID, week)
	fiche.Status = status
	return fiche
}

// FicheJourFactory provides methods to create test FicheJour data
type FicheJourFactory struct{}

// NewFicheJourFactory creates a new FicheJourFactory
func NewFicheJourFactory() *FicheJourFactory {
	return &FicheJourFactory{}
}

// Create creates a worked test day with default values
func (f *FicheJourFactory) Create(companyID, ficheID uuid.UUID, date time.Time) *models.FicheJour {
	code := models.TrajetZone1
	return &models.FicheJour{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:      companyID,
		FicheID:        ficheID,
		Date:           date,
		HeuresNormales: 8,
		NbTrajets:      1,
		Panier:         true,
		TrajetCode:     &code,
	}
}

// Absent creates a non-worked test day
func (f *FicheJourFactory) Absent(companyID, ficheID uuid.UUID, date time.Time) *models.FicheJour {
	jour := f.Create(companyID, ficheID, date)
	jour.HeuresNormales = 0
	jour.NbTrajets = 0
	jour.Panier = false
	jour.TrajetCode = nil
	return jour
}

// VehicleFactory provides methods to create test Vehicle data
type VehicleFactory struct{}

// NewVehicleFactory creates a new VehicleFactory
func NewVehicleFactory() *VehicleFactory {
	return &VehicleFactory{}
}

// Create creates a test Vehicle with default values
func (f *VehicleFactory) Create(companyID uuid.UUID) *models.Vehicle {
	id := uuid.New()
	return &models.Vehicle{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:       companyID,
		Immatriculation: "AB-" + id.String()[:3] + "-CD",
		Label:           "Fourgon chantier",
		IsActive:        true,
	}
}
