package usecase

import (
	"math"
	"testing"

	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNearestWithinThreshold(t *testing.T) {
	civil := &models.Stop{Lat: 18.2145115, Lon: -67.1398197, Name: "Ingeniería Civil"}
	biblio := &models.Stop{Lat: 18.2110, Lon: -67.1410, Name: "Biblioteca"}
	centro := &models.Stop{Lat: 18.2100, Lon: -67.1420, Name: "Centro de Estudiantes"}

	tests := []struct {
		name      string
		distances []float64
		stops     []*models.Stop
		threshold float64
		want      *models.Stop
	}{
		{
			name:      "single stop within threshold",
			distances: []float64{4.2},
			stops:     []*models.Stop{civil},
			threshold: 10,
			want:      civil,
		},
		{
			name:      "no stop within threshold",
			distances: []float64{391.7, 120},
			stops:     []*models.Stop{civil, biblio},
			threshold: 10,
		},
		{
			name:      "first qualifying stop wins over a closer later one",
			distances: []float64{50, 9.9, 1.0},
			stops:     []*models.Stop{civil, biblio, centro},
			threshold: 10,
			want:      biblio,
		},
		{
			name:      "equal distances keep directory order",
			distances: []float64{3, 3},
			stops:     []*models.Stop{biblio, civil},
			threshold: 10,
			want:      biblio,
		},
		{
			name:      "threshold is strict",
			distances: []float64{10},
			stops:     []*models.Stop{civil},
			threshold: 10,
		},
		{
			name:      "unroutable pair never qualifies",
			distances: []float64{math.Inf(1), 2},
			stops:     []*models.Stop{civil, biblio},
			threshold: 10,
			want:      biblio,
		},
		{
			name:      "shorter distances only scan the common prefix",
			distances: []float64{20},
			stops:     []*models.Stop{civil, biblio},
			threshold: 10,
		},
		{
			name:      "shorter stops only scan the common prefix",
			distances: []float64{20, 1},
			stops:     []*models.Stop{civil},
			threshold: 10,
		},
		{
			name:      "empty directory",
			threshold: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestWithinThreshold(tt.distances, tt.stops, tt.threshold)
			assert.Equal(t, tt.want, got)

			again := NearestWithinThreshold(tt.distances, tt.stops, tt.threshold)
			assert.Same(t, got, again)
		})
	}
}
