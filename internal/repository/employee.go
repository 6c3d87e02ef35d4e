package repository

import (
	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email within a company
func (r *EmployeeRepository) GetByEmail(companyID uuid.UUID, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "company_id = ? AND email = ?", companyID, email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail retrieves an active employee by email across companies, for
// login. Email is unique per company; cross-company duplicates resolve to
// the earliest account.
func (r *EmployeeRepository) FindByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Order("created_at").First(&employee, "email = ? AND is_active = ?", email, true).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByCompanyID retrieves all employees for a company with pagination
func (r *EmployeeRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetByRole retrieves all active employees with a specific role in a company
func (r *EmployeeRepository) GetByRole(companyID uuid.UUID, role models.EmployeeRole) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("company_id = ? AND role = ? AND is_active = ?", companyID, role, true).
		Order("full_name").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// SetActiveStatus sets the active status of an employee
func (r *EmployeeRepository) SetActiveStatus(id uuid.UUID, isActive bool) error {
	return r.db.Model(&models.Employee{}).Where("id = ?", id).Update("is_active", isActive).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
