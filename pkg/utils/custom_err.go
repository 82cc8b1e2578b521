package utils

import (
	"errors"
	"fmt"
)

// Categories. HandleServiceError maps each of them to one HTTP status.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrDatabaseError = errors.New("database error")
)

var (
	ErrInvalidCoordinate = fmt.Errorf("%w: coordinates must be positive", ErrInvalidInput)
	ErrInvalidName       = fmt.Errorf("%w: name is required", ErrInvalidInput)
	ErrInvalidRadius     = fmt.Errorf("%w: dmax must be a non-negative number", ErrInvalidInput)
	ErrCoordinateTaken   = fmt.Errorf("%w: a POI already exists at these coordinates", ErrConflict)
	ErrNameTaken         = fmt.Errorf("%w: a POI with this name already exists", ErrConflict)
	ErrPOINotFound       = fmt.Errorf("%w: no POI found", ErrNotFound)
)
