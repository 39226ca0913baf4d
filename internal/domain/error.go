package domain

import "errors"

var (
	// Common domain errors
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrAreaNotFound       = errors.New("area not found")
)
