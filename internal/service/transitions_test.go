package service

import (
	"testing"

	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from models.FicheStatus
		to   models.FicheStatus
		want bool
	}{
		{"submit draft", models.StatusBrouillon, models.StatusEnSignature, true},
		{"chef validates", models.StatusEnSignature, models.StatusValideChef, true},
		{"conducteur validates", models.StatusValideChef, models.StatusValideConducteur, true},
		{"timeout escalation", models.StatusValideChef, models.StatusAutoValide, true},
		{"send to HR after conducteur", models.StatusValideConducteur, models.StatusEnvoyeRH, true},
		{"send to HR after auto validation", models.StatusAutoValide, models.StatusEnvoyeRH, true},
		{"reject from signature", models.StatusEnSignature, models.StatusBrouillon, true},
		{"reject after chef validation", models.StatusValideChef, models.StatusBrouillon, true},
		{"reopen after HR send", models.StatusEnvoyeRH, models.StatusBrouillon, true},

		{"no skipping signature", models.StatusBrouillon, models.StatusValideChef, false},
		{"no skipping chef", models.StatusEnSignature, models.StatusValideConducteur, false},
		{"no direct draft to HR", models.StatusBrouillon, models.StatusEnvoyeRH, false},
		{"no auto validation before chef", models.StatusEnSignature, models.StatusAutoValide, false},
		{"no going back one step", models.StatusValideConducteur, models.StatusValideChef, false},
		{"no self transition", models.StatusBrouillon, models.StatusBrouillon, false},
		{"no double validation path", models.StatusValideConducteur, models.StatusAutoValide, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func TestRoleMayRequest(t *testing.T) {
	companyID := uuid.New()
	ownerID := uuid.New()

	owner := Actor{EmployeeID: ownerID, CompanyID: companyID, Role: models.RoleOuvrier}
	otherOuvrier := Actor{EmployeeID: uuid.New(), CompanyID: companyID, Role: models.RoleOuvrier}
	chef := Actor{EmployeeID: uuid.New(), CompanyID: companyID, Role: models.RoleChef}
	conducteur := Actor{EmployeeID: uuid.New(), CompanyID: companyID, Role: models.RoleConducteur}
	rh := Actor{EmployeeID: uuid.New(), CompanyID: companyID, Role: models.RoleRH}
	admin := Actor{EmployeeID: uuid.New(), CompanyID: companyID, Role: models.RoleAdmin}

	tests := []struct {
		name  string
		actor Actor
		to    models.FicheStatus
		want  bool
	}{
		{"owner submits own draft", owner, models.StatusEnSignature, true},
		{"another ouvrier cannot submit it", otherOuvrier, models.StatusEnSignature, false},
		{"chef submits", chef, models.StatusEnSignature, true},
		{"chef validates", chef, models.StatusValideChef, true},
		{"conducteur cannot chef-validate", conducteur, models.StatusValideChef, false},
		{"conducteur validates", conducteur, models.StatusValideConducteur, true},
		{"chef cannot conducteur-validate", chef, models.StatusValideConducteur, false},
		{"conducteur escalates to auto", conducteur, models.StatusAutoValide, true},
		{"rh sends to HR", rh, models.StatusEnvoyeRH, true},
		{"chef cannot send to HR", chef, models.StatusEnvoyeRH, false},
		{"rh rejects to draft", rh, models.StatusBrouillon, true},
		{"owner cannot reject own fiche", owner, models.StatusBrouillon, false},
		{"admin passes every gate", admin, models.StatusValideChef, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roleMayRequest(tt.actor, ownerID, tt.to))
		})
	}
}

func TestActorHasRole(t *testing.T) {
	chef := Actor{Role: models.RoleChef}
	admin := Actor{Role: models.RoleAdmin}

	assert.True(t, chef.HasRole(models.RoleChef))
	assert.True(t, chef.HasRole(models.RoleConducteur, models.RoleChef))
	assert.False(t, chef.HasRole(models.RoleConducteur))
	assert.False(t, chef.HasRole())
	assert.True(t, admin.HasRole(models.RoleRH))
	assert.True(t, admin.HasRole())
}
