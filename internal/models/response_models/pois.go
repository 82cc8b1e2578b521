package response_models

import "gps/internal/models/db_models"

type POI struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type CreatedPOI struct {
	ID string `json:"id"`
}

func FromPOIs(pois []db_models.POI) []POI {
	out := make([]POI, 0, len(pois))
	for _, p := range pois {
		out = append(out, POI{Name: p.Name, X: p.X, Y: p.Y})
	}
	return out
}
