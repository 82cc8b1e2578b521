package services

import (
	"math"

	"gps/internal/models/db_models"
)

// Distance is the Euclidean (L2) distance between (ax, ay) and (bx, by).
func Distance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// FilterInRange returns the POIs whose distance to (x, y) is at most dmax,
// in input order. The comparison is made on the true distance, so dmax == 0
// keeps only exact matches, and NaN on either side never matches.
func FilterInRange(pois []db_models.POI, x, y, dmax float64) []db_models.POI {
	inRange := make([]db_models.POI, 0)
	for _, p := range pois {
		if Distance(x, y, p.X, p.Y) <= dmax {
			inRange = append(inRange, p)
		}
	}
	return inRange
}
