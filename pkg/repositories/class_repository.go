package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alou/yoga-journal/pkg/database"
	"github.com/alou/yoga-journal/pkg/models"
)

// HistoryFilter selects class records for the history browser. Zero values
// mean "no filter" except Days, which callers must set.
type HistoryFilter struct {
	Days         int    // time range in days back from today
	LocationName string // exact match on location name
	ClassType    string // exact match on class type display name
	Search       string // case-insensitive substring across theme, notes, peak pose
}

// ClassRepository provides data access for logged classes. Records are
// append-only; there is no update or delete.
type ClassRepository interface {
	Insert(ctx context.Context, record *models.ClassRecord) error
	History(ctx context.Context, filter HistoryFilter) ([]*models.HistoryEntry, error)
}

type classRepository struct {
	db *database.DB
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db *database.DB) ClassRepository {
	return &classRepository{db: db}
}

var _ ClassRepository = (*classRepository)(nil)

func (r *classRepository) Insert(ctx context.Context, record *models.ClassRecord) error {
	query := `
		INSERT INTO app_data.classes_taught (
			class_date, class_time, day_of_week, location_id, class_type_id,
			theme_id, custom_theme, intention, peak_pose, sequence_notes,
			energy_level, student_count, vibe_rating, personal_notes
		) VALUES ($1, $2::time, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING class_id, created_at`

	notes, err := sequenceNotesValue(record.SequenceNotes)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, query,
		record.ClassDate,
		nullString(record.ClassTime),
		record.DayOfWeek,
		record.LocationID,
		record.ClassTypeID,
		record.ThemeID,
		nullString(record.CustomTheme),
		nullString(record.Intention),
		nullString(record.PeakPose),
		notes,
		nullString(record.EnergyLevel),
		record.StudentCount,
		record.VibeRating,
		nullString(record.PersonalNotes),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert class record: %w", err)
	}

	return nil
}

func (r *classRepository) History(ctx context.Context, filter HistoryFilter) ([]*models.HistoryEntry, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			c.class_id,
			c.class_date,
			c.day_of_week,
			to_char(c.class_time, 'HH24:MI') AS class_time,
			l.location_name,
			ct.display_name AS class_type,
			ct.is_heated,
			COALESCE(t.theme_name, c.custom_theme) AS theme,
			t.category AS theme_category,
			c.peak_pose,
			c.energy_level,
			c.student_count,
			c.vibe_rating,
			c.intention,
			c.personal_notes,
			c.sequence_notes
		FROM app_data.classes_taught c
		LEFT JOIN app_data.locations l ON c.location_id = l.location_id
		LEFT JOIN app_data.class_types ct ON c.class_type_id = ct.class_type_id
		LEFT JOIN app_data.themes t ON c.theme_id = t.theme_id
		WHERE c.class_date >= CURRENT_DATE - $1::int`)

	args := []any{filter.Days}

	if filter.LocationName != "" {
		args = append(args, filter.LocationName)
		fmt.Fprintf(&sb, " AND l.location_name = $%d", len(args))
	}

	if filter.ClassType != "" {
		args = append(args, filter.ClassType)
		fmt.Fprintf(&sb, " AND ct.display_name = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (
			COALESCE(t.theme_name, c.custom_theme) ILIKE $%d
			OR c.personal_notes ILIKE $%d
			OR c.peak_pose ILIKE $%d
		)`, n, n, n)
	}

	sb.WriteString(" ORDER BY c.class_date DESC, c.class_time DESC")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query class history: %w", err)
	}
	defer rows.Close()

	var entries []*models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var classTime, locationName, classType, theme, themeCategory *string
		var peakPose, energyLevel, intention, personalNotes *string
		var isHeated *bool
		var studentCount, vibeRating *int
		var sequenceNotes []byte

		err := rows.Scan(
			&e.ClassID,
			&e.ClassDate,
			&e.DayOfWeek,
			&classTime,
			&locationName,
			&classType,
			&isHeated,
			&theme,
			&themeCategory,
			&peakPose,
			&energyLevel,
			&studentCount,
			&vibeRating,
			&intention,
			&personalNotes,
			&sequenceNotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		e.ClassTime = derefString(classTime)
		e.LocationName = derefString(locationName)
		e.ClassType = derefString(classType)
		e.Theme = derefString(theme)
		e.ThemeCategory = derefString(themeCategory)
		e.PeakPose = derefString(peakPose)
		e.EnergyLevel = derefString(energyLevel)
		e.Intention = derefString(intention)
		e.PersonalNotes = derefString(personalNotes)
		if isHeated != nil {
			e.IsHeated = *isHeated
		}
		if studentCount != nil {
			e.StudentCount = *studentCount
		}
		if vibeRating != nil {
			e.VibeRating = *vibeRating
		}

		if len(sequenceNotes) > 0 && string(sequenceNotes) != "null" {
			var notes models.SequenceNotes
			if err := json.Unmarshal(sequenceNotes, &notes); err != nil {
				return nil, fmt.Errorf("failed to unmarshal sequence notes: %w", err)
			}
			e.SequenceNotes = &notes
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class history: %w", err)
	}

	return entries, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

// nullString returns nil if the string is empty, otherwise the string
// pointer, so empty form fields store NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sequenceNotesValue marshals a sequence-notes document for JSONB insertion.
// Empty documents store NULL rather than {}.
func sequenceNotesValue(notes *models.SequenceNotes) (any, error) {
	if notes.IsEmpty() {
		return nil, nil
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sequence notes: %w", err)
	}
	return data, nil
}
