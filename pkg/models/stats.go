package models

import "time"

// OverallStats is the dashboard headline row.
type OverallStats struct {
	TotalClasses    int     `json:"total_classes"`
	TotalStudents   int     `json:"total_students"`
	AvgVibe         float64 `json:"avg_vibe"`
	LocationsTaught int     `json:"locations_taught"`
	UniqueThemes    int     `json:"unique_themes"`
}

// LocationStats is one row of the analytics.location_stats view.
type LocationStats struct {
	LocationName string  `json:"location_name"`
	TotalClasses int     `json:"total_classes"`
	AvgVibe      float64 `json:"avg_vibe"`
	AvgStudents  float64 `json:"avg_students"`
}

// ClassTypeStats is one row of the analytics.class_type_stats view.
type ClassTypeStats struct {
	ClassType    string  `json:"class_type"`
	IsHeated     bool    `json:"is_heated"`
	TotalClasses int     `json:"total_classes"`
	AvgVibe      float64 `json:"avg_vibe"`
	AvgStudents  float64 `json:"avg_students"`
}

// ThemeStats is one row of the analytics.theme_stats view, grouped by
// effective theme.
type ThemeStats struct {
	Theme       string  `json:"theme"`
	TimesTaught int     `json:"times_taught"`
	AvgVibe     float64 `json:"avg_vibe"`
	AvgStudents float64 `json:"avg_students"`
}

// StudentTrendPoint is one class in the 90-day student-count series.
// MovingAvg is the 3-class trailing average, computed by the dashboard
// service over the chronologically ordered series.
type StudentTrendPoint struct {
	ClassDate    time.Time `json:"class_date"`
	StudentCount int       `json:"student_count"`
	ClassType    string    `json:"class_type,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	MovingAvg    float64   `json:"moving_avg"`
}

// PopularClass is one class with 15 or more students, used as sequence
// suggestion context.
type PopularClass struct {
	Theme        string `json:"theme,omitempty"`
	PeakPose     string `json:"peak_pose,omitempty"`
	EnergyLevel  string `json:"energy_level,omitempty"`
	StudentCount int    `json:"student_count"`
}
