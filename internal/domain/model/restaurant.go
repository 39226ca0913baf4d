// File: internal/domain/model/restaurant.go
package model

// Weekdays labels the seven openingHours slots, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Restaurant is a single canteen as reported by the upstream areas endpoint.
// Instances are treated as immutable once loaded.
type Restaurant struct {
	ID           string
	Name         string
	URL          string
	Address      string
	OpeningHours []string // Mon..Sun
}
