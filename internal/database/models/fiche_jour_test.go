package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFicheJourIsAbsent(t *testing.T) {
	tests := []struct {
		name        string
		normales    float64
		intemperies float64
		absent      bool
		worked      bool
	}{
		{"no hours at all", 0, 0, true, false},
		{"normal hours only", 8, 0, false, true},
		{"inclement hours only", 0, 3.5, false, false},
		{"both kinds of hours", 5, 3, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &FicheJour{HeuresNormales: tt.normales, HeuresIntemperies: tt.intemperies}
			assert.Equal(t, tt.absent, j.IsAbsent())
			assert.Equal(t, tt.worked, j.IsWorked())
		})
	}
}

func TestFicheStatusIsBlocking(t *testing.T) {
	blocking := []FicheStatus{StatusValideChef, StatusValideConducteur, StatusAutoValide, StatusEnvoyeRH}
	for _, s := range blocking {
		assert.True(t, s.IsBlocking(), "%s should block edits", s)
	}
	assert.False(t, StatusBrouillon.IsBlocking())
	assert.False(t, StatusEnSignature.IsBlocking())
}

func TestFicheStatusIsEarly(t *testing.T) {
	assert.True(t, StatusBrouillon.IsEarly())
	assert.True(t, StatusValideChef.IsEarly())
	// Crew dissolution only removes BROUILLON and VALIDE_CHEF fiches.
	for _, s := range []FicheStatus{StatusEnSignature, StatusValideConducteur, StatusAutoValide, StatusEnvoyeRH} {
		assert.False(t, s.IsEarly(), "%s must survive dissolution", s)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, TrajetACompleter.IsValid())
	assert.False(t, TrajetCode("T9").IsValid())
	assert.True(t, AbsenceCongesPayes.IsValid())
	assert.False(t, AbsenceType("XX").IsValid())
	assert.True(t, RoleConducteur.IsValid())
	assert.False(t, EmployeeRole("STAGIAIRE").IsValid())
	assert.True(t, CongeEnAttente.IsValid())
	assert.True(t, CongeValideeRH.IsTerminal())
	assert.True(t, CongeRefusee.IsTerminal())
	assert.False(t, CongeValideeConducteur.IsTerminal())
}
