package auth

import (
	"errors"
	"fmt"
	"time"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService provides authentication functionality
type AuthService struct {
	secret       []byte
	ttl          time.Duration
	employeeRepo *repository.EmployeeRepository
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	EmployeeID uuid.UUID           `json:"employee_id"`
	CompanyID  uuid.UUID           `json:"company_id"`
	Role       models.EmployeeRole `json:"role"`
	Email      string              `json:"email" example:"jean.dupont@example.com"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken string              `json:"accessToken"`
	TokenType   string              `json:"tokenType" example:"bearer"`
	ExpiresIn   int64               `json:"expiresIn" example:"43200"`
	EmployeeID  uuid.UUID           `json:"employee_id"`
	CompanyID   uuid.UUID           `json:"company_id"`
	Role        models.EmployeeRole `json:"role"`
	FullName    string              `json:"full_name"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration, employeeRepo *repository.EmployeeRepository) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive")
	}
	return &AuthService{
		secret:       []byte(secret),
		ttl:          ttl,
		employeeRepo: employeeRepo,
	}, nil
}

// Login verifies the employee's credentials and issues a JWT
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	employee, err := s.employeeRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.AuthenticationError{Message: "invalid credentials"}
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &apperrors.AuthenticationError{Message: "invalid credentials"}
	}

	token, err := s.GenerateJWT(employee)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		EmployeeID:  employee.ID,
		CompanyID:   employee.CompanyID,
		Role:        employee.Role,
		FullName:    employee.FullName,
	}, nil
}

// GenerateJWT creates a signed token carrying the employee's identity,
// tenant and role.
func (s *AuthService) GenerateJWT(employee *models.Employee) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		EmployeeID: employee.ID,
		CompanyID:  employee.CompanyID,
		Role:       employee.Role,
		Email:      employee.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pointage-backend",
			Subject:   employee.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// HashPassword produces a bcrypt hash for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
