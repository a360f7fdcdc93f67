package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationUpdate_DropUnknownReadings(t *testing.T) {
	tests := []struct {
		name         string
		accuracy     float64
		bearing      float64
		wantAccuracy float64
		wantBearing  float64
	}{
		{"valid readings kept", 4.5, 270, 4.5, 270},
		{"unknown course", 5, -1, 5, 0},
		{"unknown accuracy", -1, 90, 0, 90},
		{"negative bearing", 5, -90, 5, 0},
		{"bearing past full turn", 5, 361, 5, 0},
		{"full turn kept", 5, 360, 5, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := LocationUpdate{Accuracy: tt.accuracy, Bearing: tt.bearing}

			u.DropUnknownReadings()

			assert.Equal(t, tt.wantAccuracy, u.Accuracy)
			assert.Equal(t, tt.wantBearing, u.Bearing)
		})
	}
}
