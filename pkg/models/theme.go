package models

import "time"

// Theme categories.
const (
	ThemeCategoryPhysical      = "Physical"
	ThemeCategoryEmotional     = "Emotional"
	ThemeCategoryPhilosophical = "Philosophical"
)

// Theme is a catalog teaching theme. A class may link to a catalog theme,
// carry free text in ClassRecord.CustomTheme, or both; the effective theme
// is the catalog name when linked, else the free text.
type Theme struct {
	ID        int64     `json:"theme_id"`
	Name      string    `json:"theme_name"`
	Category  string    `json:"category,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
