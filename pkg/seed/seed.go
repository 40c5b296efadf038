// Package seed holds the provisioning payload applied by yoga-setup:
// the reference catalogs and a batch of dated sample classes. Applying
// the payload is deliberately not versioned; every run inserts a fresh
// copy of each row, so re-provisioning duplicates the data while the
// schema migrations stay idempotent.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Data is the full seed payload.
type Data struct {
	Locations     []Location    `yaml:"locations"`
	ClassTypes    []ClassType   `yaml:"class_types"`
	Themes        []Theme       `yaml:"themes"`
	SampleClasses []SampleClass `yaml:"sample_classes"`
}

// Location is one studio row.
type Location struct {
	Name         string `yaml:"name"`
	Neighborhood string `yaml:"neighborhood"`
	Address      string `yaml:"address"`
}

// ClassType is one class format row.
type ClassType struct {
	Name            string `yaml:"name"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Heated          bool   `yaml:"heated"`
	DisplayName     string `yaml:"display_name"`
}

// Theme is one catalog theme row.
type Theme struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Notes    string `yaml:"notes"`
}

// SampleClass is one demo class, dated relative to the day it is
// applied.
type SampleClass struct {
	DaysAgo       int    `yaml:"days_ago"`
	Time          string `yaml:"time"`
	LocationID    int64  `yaml:"location_id"`
	ClassTypeID   int64  `yaml:"class_type_id"`
	ThemeID       int64  `yaml:"theme_id"`
	Intention     string `yaml:"intention"`
	PeakPose      string `yaml:"peak_pose"`
	EnergyLevel   string `yaml:"energy_level"`
	StudentCount  int    `yaml:"student_count"`
	VibeRating    int    `yaml:"vibe_rating"`
	PersonalNotes string `yaml:"personal_notes"`
}

// Load decodes the embedded seed payload.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("bad seed data: %w", err)
	}
	return &data, nil
}

// InsertReference loads the location, class type, and theme catalogs.
func InsertReference(ctx context.Context, db *sql.DB, data *Data) error {
	for _, l := range data.Locations {
		_, err := db.ExecContext(ctx,
			`INSERT INTO app_data.locations (location_name, neighborhood, address) VALUES ($1, $2, $3)`,
			l.Name, l.Neighborhood, l.Address)
		if err != nil {
			return fmt.Errorf("failed to insert location %q: %w", l.Name, err)
		}
	}

	for _, ct := range data.ClassTypes {
		_, err := db.ExecContext(ctx,
			`INSERT INTO app_data.class_types (class_name, duration_minutes, is_heated, display_name) VALUES ($1, $2, $3, $4)`,
			ct.Name, ct.DurationMinutes, ct.Heated, ct.DisplayName)
		if err != nil {
			return fmt.Errorf("failed to insert class type %q: %w", ct.DisplayName, err)
		}
	}

	for _, t := range data.Themes {
		_, err := db.ExecContext(ctx,
			`INSERT INTO app_data.themes (theme_name, category, notes) VALUES ($1, $2, $3)`,
			t.Name, t.Category, t.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert theme %q: %w", t.Name, err)
		}
	}
	return nil
}

// InsertSampleClasses loads the demo classes. Each class date is
// computed from today minus its offset, and day_of_week is derived from
// the computed date.
func InsertSampleClasses(ctx context.Context, db *sql.DB, data *Data) error {
	today := time.Now()
	for i, c := range data.SampleClasses {
		classDate := today.AddDate(0, 0, -c.DaysAgo)
		_, err := db.ExecContext(ctx,
			`INSERT INTO app_data.classes_taught
			    (class_date, class_time, day_of_week, location_id, class_type_id, theme_id,
			     intention, peak_pose, energy_level, student_count, vibe_rating, personal_notes)
			 VALUES ($1, $2::time, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			classDate.Format("2006-01-02"), c.Time, classDate.Weekday().String(),
			c.LocationID, c.ClassTypeID, c.ThemeID,
			c.Intention, c.PeakPose, c.EnergyLevel,
			c.StudentCount, c.VibeRating, c.PersonalNotes)
		if err != nil {
			return fmt.Errorf("failed to insert sample class %d: %w", i+1, err)
		}
	}
	return nil
}
