package request_models

// Coordinates are pointers so that a missing field is told apart from an
// explicit zero: 0 is a legal query coordinate and dmax.

type CreatePoiRequest struct {
	Name string   `json:"name" binding:"required"`
	X    *float64 `json:"x" binding:"required"`
	Y    *float64 `json:"y" binding:"required"`
}

type SearchPoiRequest struct {
	X    *float64 `json:"x" form:"x" binding:"required"`
	Y    *float64 `json:"y" form:"y" binding:"required"`
	DMax *float64 `json:"dmax" form:"dmax" binding:"required"`
}
