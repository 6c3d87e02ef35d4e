package auth

import (
	"testing"
	"time"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()
	svc, err := NewAuthService("test-secret", ttl, nil)
	require.NoError(t, err)
	return svc
}

func testEmployee() *models.Employee {
	return &models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: uuid.New(),
		FullName:  "Jean Dupont",
		Email:     "jean.dupont@example.com",
		Role:      models.RoleChef,
		IsActive:  true,
	}
}

func TestNewAuthService(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := NewAuthService("", time.Hour, nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		_, err := NewAuthService("secret", 0, nil)
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc := newTestService(t, time.Hour)
	employee := testEmployee()

	token, err := svc.GenerateJWT(employee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, claims.EmployeeID)
	assert.Equal(t, employee.CompanyID, claims.CompanyID)
	assert.Equal(t, models.RoleChef, claims.Role)
	assert.Equal(t, employee.Email, claims.Email)
	assert.Equal(t, "pointage-backend", claims.Issuer)
	assert.Equal(t, employee.ID.String(), claims.Subject)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	svc := newTestService(t, -time.Minute)

	token, err := svc.GenerateJWT(testEmployee())
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	issuer := newTestService(t, time.Hour)
	verifier, err := NewAuthService("another-secret", time.Hour, nil)
	require.NoError(t, err)

	token, err := issuer.GenerateJWT(testEmployee())
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("chantier-2025")
	require.NoError(t, err)
	assert.NotEqual(t, "chantier-2025", hash)

	other, err := HashPassword("chantier-2025")
	require.NoError(t, err)
	// bcrypt salts every hash
	assert.NotEqual(t, hash, other)
}
