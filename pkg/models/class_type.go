package models

import "time"

// ClassType is a class format offered on the schedule (e.g. Vinyasa 60,
// heated).
type ClassType struct {
	ID              int64     `json:"class_type_id"`
	Name            string    `json:"class_name"`
	DurationMinutes int       `json:"duration_minutes"`
	IsHeated        bool      `json:"is_heated"`
	DisplayName     string    `json:"display_name"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
