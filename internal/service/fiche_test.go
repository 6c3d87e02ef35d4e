package service

import (
	"testing"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/week"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardWeekHours = [week.DaysPerFiche]float64{8, 8, 8, 8, 7}

func TestBuildDefaultJours(t *testing.T) {
	svc := &FicheService{defaultDailyHours: standardWeekHours}
	companyID := uuid.New()
	chantier := &models.Chantier{Code: "CH-042", City: "Nantes"}
	weekID := week.MustParse("2025-S14")

	jours := svc.buildDefaultJours(weekID, companyID, chantier)

	require.Len(t, jours, week.DaysPerFiche)
	for i, jour := range jours {
		assert.Equal(t, companyID, jour.CompanyID)
		assert.Equal(t, standardWeekHours[i], jour.HeuresNormales)
		assert.Zero(t, jour.HeuresIntemperies)
		assert.Equal(t, 1, jour.NbTrajets)
		assert.True(t, jour.Panier)
		require.NotNil(t, jour.TrajetCode)
		assert.Equal(t, models.TrajetACompleter, *jour.TrajetCode)
		assert.Nil(t, jour.TypeAbsence)
		assert.Equal(t, "CH-042", jour.ChantierCode)
		assert.Equal(t, "Nantes", jour.ChantierCity)
		assert.False(t, jour.IsAbsent())
	}

	// Monday through Friday of the requested week, in order.
	dates := weekID.Weekdays()
	for i, jour := range jours {
		assert.Equal(t, dates[i], jour.Date)
	}
}

func TestBuildDefaultJoursWithoutChantier(t *testing.T) {
	svc := &FicheService{defaultDailyHours: standardWeekHours}

	jours := svc.buildDefaultJours(week.MustParse("2025-S01"), uuid.New(), nil)

	require.Len(t, jours, week.DaysPerFiche)
	for _, jour := range jours {
		assert.Empty(t, jour.ChantierCode)
		assert.Empty(t, jour.ChantierCity)
	}
}

func TestDefaultWeekTotal(t *testing.T) {
	svc := &FicheService{defaultDailyHours: standardWeekHours}
	assert.Equal(t, 39.0, svc.defaultWeekTotal())
}

func TestValidateJourBounds(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	n := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     UpdateJourRequest
		wantErr bool
	}{
		{"empty update", UpdateJourRequest{}, false},
		{"normal hours in range", UpdateJourRequest{HeuresNormales: f(7.5)}, false},
		{"zero hours", UpdateJourRequest{HeuresNormales: f(0)}, false},
		{"full day", UpdateJourRequest{HeuresNormales: f(24)}, false},
		{"negative hours", UpdateJourRequest{HeuresNormales: f(-1)}, true},
		{"more than a day", UpdateJourRequest{HeuresNormales: f(24.5)}, true},
		{"intemperies in range", UpdateJourRequest{HeuresIntemperies: f(4)}, false},
		{"negative intemperies", UpdateJourRequest{HeuresIntemperies: f(-0.5)}, true},
		{"trajets in range", UpdateJourRequest{NbTrajets: n(2)}, false},
		{"too many trajets", UpdateJourRequest{NbTrajets: n(11)}, true},
		{"negative trajets", UpdateJourRequest{NbTrajets: n(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateJourBounds(&tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
