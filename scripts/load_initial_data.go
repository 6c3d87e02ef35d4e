package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pointage-backend/internal/auth"
	"pointage-backend/internal/config"
	"pointage-backend/internal/database"
	"pointage-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name  string `yaml:"name"`
	Siren string `yaml:"siren,omitempty"`
}

type EmployeeData struct {
	CompanyName string `yaml:"company_name"`
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	Role        string `yaml:"role"`
	Password    string `yaml:"password"`
	IsActive    bool   `yaml:"is_active"`
}

type ChantierData struct {
	CompanyName string `yaml:"company_name"`
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	City        string `yaml:"city,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type VehicleData struct {
	CompanyName     string `yaml:"company_name"`
	Immatriculation string `yaml:"immatriculation"`
	Label           string `yaml:"label,omitempty"`
	IsActive        bool   `yaml:"is_active"`
}

type ClosedPeriodData struct {
	CompanyName string `yaml:"company_name"`
	Label       string `yaml:"label"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
}

// File structures
type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ChantiersFile struct {
	Chantiers []ChantierData `yaml:"chantiers"`
}

type VehiclesFile struct {
	Vehicles []VehicleData `yaml:"vehicles"`
}

type ClosedPeriodsFile struct {
	ClosedPeriods []ClosedPeriodData `yaml:"closed_periods"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var companiesFile CompaniesFile
	if err := readYAML(filepath.Join(dataDir, "companies.yaml"), &companiesFile); err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	var employeesFile EmployeesFile
	if err := readYAML(filepath.Join(dataDir, "employees.yaml"), &employeesFile); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	var chantiersFile ChantiersFile
	if err := readYAML(filepath.Join(dataDir, "chantiers.yaml"), &chantiersFile); err != nil {
		return fmt.Errorf("failed to load chantiers: %w", err)
	}
	var vehiclesFile VehiclesFile
	if err := readYAML(filepath.Join(dataDir, "vehicles.yaml"), &vehiclesFile); err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}
	var periodsFile ClosedPeriodsFile
	if err := readYAML(filepath.Join(dataDir, "closed_periods.yaml"), &periodsFile); err != nil {
		return fmt.Errorf("failed to load closed periods: %w", err)
	}

	// Create companies first; everything else hangs off them
	companyMap := make(map[string]*models.Company)
	companiesCreated := 0
	for _, data := range companiesFile.Companies {
		company, created, err := createCompany(db, data)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", data.Name, err)
		}
		companyMap[data.Name] = company
		if created {
			companiesCreated++
		}
	}
	log.Printf("Companies: %d created, %d total", companiesCreated, len(companiesFile.Companies))

	employeesCreated := 0
	for _, data := range employeesFile.Employees {
		company, ok := companyMap[data.CompanyName]
		if !ok {
			return fmt.Errorf("employee %s references unknown company %s", data.Email, data.CompanyName)
		}
		created, err := createEmployee(db, company, data)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", data.Email, err)
		}
		if created {
			employeesCreated++
		}
	}
	log.Printf("Employees: %d created, %d total", employeesCreated, len(employeesFile.Employees))

	chantiersCreated := 0
	for _, data := range chantiersFile.Chantiers {
		company, ok := companyMap[data.CompanyName]
		if !ok {
			return fmt.Errorf("chantier %s references unknown company %s", data.Code, data.CompanyName)
		}
		created, err := createChantier(db, company, data)
		if err != nil {
			return fmt.Errorf("failed to create chantier %s: %w", data.Code, err)
		}
		if created {
			chantiersCreated++
		}
	}
	log.Printf("Chantiers: %d created, %d total", chantiersCreated, len(chantiersFile.Chantiers))

	vehiclesCreated := 0
	for _, data := range vehiclesFile.Vehicles {
		company, ok := companyMap[data.CompanyName]
		if !ok {
			return fmt.Errorf("vehicle %s references unknown company %s", data.Immatriculation, data.CompanyName)
		}
		created, err := createVehicle(db, company, data)
		if err != nil {
			return fmt.Errorf("failed to create vehicle %s: %w", data.Immatriculation, err)
		}
		if created {
			vehiclesCreated++
		}
	}
	log.Printf("Vehicles: %d created, %d total", vehiclesCreated, len(vehiclesFile.Vehicles))

	periodsCreated := 0
	for _, data := range periodsFile.ClosedPeriods {
		company, ok := companyMap[data.CompanyName]
		if !ok {
			return fmt.Errorf("closed period references unknown company %s", data.CompanyName)
		}
		created, err := createClosedPeriod(db, company, data)
		if err != nil {
			return fmt.Errorf("failed to create closed period %s: %w", data.Label, err)
		}
		if created {
			periodsCreated++
		}
	}
	log.Printf("Closed periods: %d created, %d total", periodsCreated, len(periodsFile.ClosedPeriods))

	return nil
}

func readYAML(path string, target interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// missing fixture file means "nothing of this kind to load"
			return nil
		}
		return err
	}
	return yaml.Unmarshal(content, target)
}

func createCompany(db *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var existing models.Company
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	company := &models.Company{
		Name:  data.Name,
		Siren: data.Siren,
	}
	if err := db.Create(company).Error; err != nil {
		return nil, false, err
	}
	return company, true, nil
}

func createEmployee(db *gorm.DB, company *models.Company, data EmployeeData) (bool, error) {
	var existing models.Employee
	err := db.Where("company_id = ? AND email = ?", company.ID, data.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		CompanyID:    company.ID,
		FullName:     data.FullName,
		Email:        data.Email,
		Role:         models.EmployeeRole(data.Role),
		IsActive:     data.IsActive,
		PasswordHash: hash,
	}
	if !employee.Role.IsValid() {
		return false, fmt.Errorf("unknown role %q", data.Role)
	}
	if err := db.Create(employee).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createChantier(db *gorm.DB, company *models.Company, data ChantierData) (bool, error) {
	var existing models.Chantier
	err := db.Where("company_id = ? AND code = ?", company.ID, data.Code).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	chantier := &models.Chantier{
		CompanyID: company.ID,
		Code:      data.Code,
		Name:      data.Name,
		City:      data.City,
		IsActive:  data.IsActive,
	}
	if err := db.Create(chantier).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createVehicle(db *gorm.DB, company *models.Company, data VehicleData) (bool, error) {
	var existing models.Vehicle
	err := db.Where("company_id = ? AND immatriculation = ?", company.ID, data.Immatriculation).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	vehicle := &models.Vehicle{
		CompanyID:       company.ID,
		Immatriculation: data.Immatriculation,
		Label:           data.Label,
		IsActive:        data.IsActive,
	}
	if err := db.Create(vehicle).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createClosedPeriod(db *gorm.DB, company *models.Company, data ClosedPeriodData) (bool, error) {
	debut, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start_date: %w", err)
	}
	fin, err := time.Parse("2006-01-02", data.EndDate)
	if err != nil {
		return false, fmt.Errorf("invalid end_date: %w", err)
	}

	var existing models.ClosedPeriod
	err = db.Where("company_id = ? AND start_date = ? AND end_date = ?", company.ID, debut, fin).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	period := &models.ClosedPeriod{
		CompanyID: company.ID,
		Label:     data.Label,
		StartDate: debut,
		EndDate:   fin,
		ClosedAt:  time.Now(),
	}
	if err := db.Create(period).Error; err != nil {
		return false, err
	}
	return true, nil
}
