package repositories

import (
	"context"
	"fmt"

	"github.com/alou/yoga-journal/pkg/database"
	"github.com/alou/yoga-journal/pkg/models"
)

// ReferenceRepository provides read access to the three lookup tables that
// populate selection inputs. Only active rows are returned, in a fixed sort
// order per table.
type ReferenceRepository interface {
	Locations(ctx context.Context) ([]*models.Location, error)
	ClassTypes(ctx context.Context) ([]*models.ClassType, error)
	Themes(ctx context.Context) ([]*models.Theme, error)
}

type referenceRepository struct {
	db *database.DB
}

// NewReferenceRepository creates a new ReferenceRepository.
func NewReferenceRepository(db *database.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

var _ ReferenceRepository = (*referenceRepository)(nil)

func (r *referenceRepository) Locations(ctx context.Context) ([]*models.Location, error) {
	query := `
		SELECT location_id, location_name, neighborhood, address, is_active, created_at
		FROM app_data.locations
		WHERE is_active = TRUE
		ORDER BY location_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		var l models.Location
		var neighborhood, address *string
		if err := rows.Scan(&l.ID, &l.Name, &neighborhood, &address, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		if neighborhood != nil {
			l.Neighborhood = *neighborhood
		}
		if address != nil {
			l.Address = *address
		}
		locations = append(locations, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locations, nil
}

func (r *referenceRepository) ClassTypes(ctx context.Context) ([]*models.ClassType, error) {
	query := `
		SELECT class_type_id, class_name, duration_minutes, is_heated, display_name, is_active, created_at
		FROM app_data.class_types
		WHERE is_active = TRUE
		ORDER BY class_name, duration_minutes`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query class types: %w", err)
	}
	defer rows.Close()

	var classTypes []*models.ClassType
	for rows.Next() {
		var ct models.ClassType
		var displayName *string
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.DurationMinutes, &ct.IsHeated, &displayName, &ct.IsActive, &ct.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan class type: %w", err)
		}
		if displayName != nil {
			ct.DisplayName = *displayName
		}
		classTypes = append(classTypes, &ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class types: %w", err)
	}

	return classTypes, nil
}

func (r *referenceRepository) Themes(ctx context.Context) ([]*models.Theme, error) {
	query := `
		SELECT theme_id, theme_name, category, notes, is_active, created_at
		FROM app_data.themes
		WHERE is_active = TRUE
		ORDER BY category, theme_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	var themes []*models.Theme
	for rows.Next() {
		var t models.Theme
		var category, notes *string
		if err := rows.Scan(&t.ID, &t.Name, &category, &notes, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		if category != nil {
			t.Category = *category
		}
		if notes != nil {
			t.Notes = *notes
		}
		themes = append(themes, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}

	return themes, nil
}
