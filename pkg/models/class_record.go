package models

import "time"

// Energy levels a class can be logged with, lowest to highest.
var EnergyLevels = []string{"Low", "Medium", "High", "Very High"}

// ValidEnergyLevel reports whether s is one of the four ordinal labels.
func ValidEnergyLevel(s string) bool {
	for _, level := range EnergyLevels {
		if s == level {
			return true
		}
	}
	return false
}

// SequenceNotes is the optional semi-structured document attached to a
// class. Fields left empty at entry are absent from the stored JSON, not
// present with empty values.
type SequenceNotes struct {
	Warmup          string `json:"warmup,omitempty"`
	Standing        string `json:"standing,omitempty"`
	Peak            string `json:"peak,omitempty"`
	Cooldown        string `json:"cooldown,omitempty"`
	SavasanaMinutes int    `json:"savasana_minutes,omitempty"`
}

// IsEmpty reports whether no sub-field was filled in. An empty document is
// stored as NULL, not as {}.
func (s *SequenceNotes) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Warmup == "" && s.Standing == "" && s.Peak == "" &&
		s.Cooldown == "" && s.SavasanaMinutes == 0
}

// ClassRecord is one logged class. Records are immutable after insert;
// there is no update or delete path. DayOfWeek is derived from ClassDate at
// write time and stored verbatim, never recomputed.
type ClassRecord struct {
	ID            int64          `json:"class_id"`
	ClassDate     time.Time      `json:"class_date"`
	ClassTime     string         `json:"class_time,omitempty"` // "HH:MM"
	DayOfWeek     string         `json:"day_of_week"`
	LocationID    *int64         `json:"location_id,omitempty"`
	ClassTypeID   *int64         `json:"class_type_id,omitempty"`
	ThemeID       *int64         `json:"theme_id,omitempty"`
	CustomTheme   string         `json:"custom_theme,omitempty"`
	Intention     string         `json:"intention,omitempty"`
	PeakPose      string         `json:"peak_pose,omitempty"`
	SequenceNotes *SequenceNotes `json:"sequence_notes,omitempty"`
	EnergyLevel   string         `json:"energy_level,omitempty"`
	StudentCount  int            `json:"student_count"`
	VibeRating    int            `json:"vibe_rating"`
	PersonalNotes string         `json:"personal_notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// HistoryEntry is a class record joined with its reference data for the
// history browser.
type HistoryEntry struct {
	ClassID       int64          `json:"class_id"`
	ClassDate     time.Time      `json:"class_date"`
	DayOfWeek     string         `json:"day_of_week"`
	ClassTime     string         `json:"class_time,omitempty"`
	LocationName  string         `json:"location_name,omitempty"`
	ClassType     string         `json:"class_type,omitempty"`
	IsHeated      bool           `json:"is_heated"`
	Theme         string         `json:"theme,omitempty"` // effective theme, blank when none
	ThemeCategory string         `json:"theme_category,omitempty"`
	PeakPose      string         `json:"peak_pose,omitempty"`
	EnergyLevel   string         `json:"energy_level,omitempty"`
	StudentCount  int            `json:"student_count"`
	VibeRating    int            `json:"vibe_rating"`
	Intention     string         `json:"intention,omitempty"`
	PersonalNotes string         `json:"personal_notes,omitempty"`
	SequenceNotes *SequenceNotes `json:"sequence_notes,omitempty"`
}
