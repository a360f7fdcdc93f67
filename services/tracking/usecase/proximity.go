package usecase

import "github.com/rumbus/shuttle/internal/pkg/models"

// NearestWithinThreshold returns the first stop, in directory order, whose distance is
// strictly below threshold. distances[i] belongs to stops[i]; when the lengths differ only
// the common prefix is considered. It returns nil when no stop qualifies.
func NearestWithinThreshold(distances []float64, stops []*models.Stop, threshold float64) *models.Stop {
	n := len(distances)
	if len(stops) < n {
		n = len(stops)
	}

	for i := 0; i < n; i++ {
		if distances[i] < threshold {
			return stops[i]
		}
	}

	return nil
}
