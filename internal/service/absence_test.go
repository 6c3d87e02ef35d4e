package service

import (
	"testing"
	"time"

	"pointage-backend/internal/database/models"
	"pointage-backend/internal/week"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveDays builds a Monday-to-Friday slice with the given normal hours.
func fiveDays(t *testing.T, hours [5]float64) []models.FicheJour {
	t.Helper()
	weekID := week.MustParse("2025-S14")
	dates := weekID.Weekdays()

	jours := make([]models.FicheJour, len(dates))
	for i, date := range dates {
		jours[i] = models.FicheJour{
			BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			Date:           date,
			HeuresNormales: hours[i],
		}
	}
	return jours
}

func TestPlanAbsencePropagation(t *testing.T) {
	tests := []struct {
		name    string
		hours   [5]float64
		edited  int
		wantIdx []int
	}{
		{
			name:    "fills forward until the next worked day",
			hours:   [5]float64{8, 0, 0, 7, 8},
			edited:  1,
			wantIdx: []int{1, 2},
		},
		{
			name:    "runs to the end of the week when nothing is worked after",
			hours:   [5]float64{8, 8, 0, 0, 0},
			edited:  2,
			wantIdx: []int{2, 3, 4},
		},
		{
			name:    "stops immediately when the next day is worked",
			hours:   [5]float64{0, 8, 8, 8, 8},
			edited:  0,
			wantIdx: []int{0},
		},
		{
			name:    "never touches earlier days",
			hours:   [5]float64{0, 0, 0, 0, 0},
			edited:  3,
			wantIdx: []int{3, 4},
		},
		{
			name:    "editing friday only covers friday",
			hours:   [5]float64{8, 8, 8, 8, 0},
			edited:  4,
			wantIdx: []int{4},
		},
		{
			name:    "fully empty week from monday covers everything",
			hours:   [5]float64{0, 0, 0, 0, 0},
			edited:  0,
			wantIdx: []int{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jours := fiveDays(t, tt.hours)

			targets := PlanAbsencePropagation(jours, jours[tt.edited].ID)

			require.Len(t, targets, len(tt.wantIdx))
			for i, idx := range tt.wantIdx {
				assert.Equal(t, jours[idx].ID, targets[i])
			}
		})
	}
}

func TestPlanAbsencePropagationOverwritesExistingCodes(t *testing.T) {
	// Days already carrying an absence code are still targets: the new
	// code overwrites the old one on the way forward.
	jours := fiveDays(t, [5]float64{0, 0, 0, 8, 8})
	rtt := models.AbsenceRTT
	jours[1].TypeAbsence = &rtt
	jours[2].TypeAbsence = &rtt

	targets := PlanAbsencePropagation(jours, jours[0].ID)

	require.Len(t, targets, 3)
	assert.Equal(t, []uuid.UUID{jours[0].ID, jours[1].ID, jours[2].ID}, targets)
}

func TestPlanAbsencePropagationIntemperiesDayIsNotWorked(t *testing.T) {
	// Weather-downtime hours do not count as worked: only normal hours
	// stop the fill.
	jours := fiveDays(t, [5]float64{0, 0, 0, 0, 8})
	jours[2].HeuresIntemperies = 4

	targets := PlanAbsencePropagation(jours, jours[0].ID)

	assert.Len(t, targets, 4)
}

func TestPlanAbsencePropagationUnknownDay(t *testing.T) {
	jours := fiveDays(t, [5]float64{0, 0, 0, 0, 0})

	targets := PlanAbsencePropagation(jours, uuid.New())

	assert.Empty(t, targets)
}
