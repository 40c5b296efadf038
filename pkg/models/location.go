package models

import "time"

// Location is a studio where classes are taught. Locations are never
// hard-deleted, only deactivated.
type Location struct {
	ID           int64     `json:"location_id"`
	Name         string    `json:"location_name"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
