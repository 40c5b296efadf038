package models

import "time"

// GeneratedTheme is one accepted AI theme suggestion, appended so the next
// prompt can avoid repeating the (theme, approach) pair. Never read back
// into the UI except as prompt context.
type GeneratedTheme struct {
	ID        int64     `json:"id"`
	ThemeName string    `json:"theme_name"`
	Approach  string    `json:"theme_approach"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedSequence is one accepted AI sequence suggestion.
type GeneratedSequence struct {
	ID        int64     `json:"id"`
	PeakPose  string    `json:"peak_pose"`
	Outline   string    `json:"sequence_outline"`
	CreatedAt time.Time `json:"created_at"`
}
