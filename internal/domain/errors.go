package domain

import (
	"errors"
	"fmt"
	"math"
)

// Startup errors. All three are fatal: the service must refuse to serve
// traffic when no data could be loaded.
var (
	// ErrDatasetIO indicates the dataset file could not be read.
	ErrDatasetIO = errors.New("dataset file is not readable")

	// ErrDatasetFormat indicates the dataset encoding is malformed.
	ErrDatasetFormat = errors.New("dataset encoding is malformed")

	// ErrEmptyDataset indicates the dataset yielded zero usable polygons.
	ErrEmptyDataset = errors.New("dataset contains no usable polygons")
)

// ErrInvalidCoordinate is a per-request, recoverable caller error. It is
// returned as a value and mapped to a response code by the HTTP layer;
// nothing is panicked or thrown across the boundary.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ValidateCoordinate rejects non-finite or out-of-range input before any
// index work happens. Out-of-range values are a caller error, never
// silently clamped.
func ValidateCoordinate(lon, lat float64) error {
	switch {
	case math.IsNaN(lon) || math.IsInf(lon, 0):
		return fmt.Errorf("%w: longitude is not finite", ErrInvalidCoordinate)
	case math.IsNaN(lat) || math.IsInf(lat, 0):
		return fmt.Errorf("%w: latitude is not finite", ErrInvalidCoordinate)
	case lon < -180 || lon > 180:
		return fmt.Errorf("%w: longitude %.6f is outside [-180, 180]", ErrInvalidCoordinate, lon)
	case lat < -90 || lat > 90:
		return fmt.Errorf("%w: latitude %.6f is outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	return nil
}
