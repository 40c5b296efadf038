package repositories

import (
	"context"
	"fmt"

	"github.com/alou/yoga-journal/pkg/database"
	"github.com/alou/yoga-journal/pkg/models"
)

// SuggestionRepository persists accepted AI suggestions. The logs are
// append-only and are read back only as prompt context for novelty
// avoidance, capped at the most recent few entries.
type SuggestionRepository interface {
	InsertTheme(ctx context.Context, theme *models.GeneratedTheme) error
	InsertSequence(ctx context.Context, sequence *models.GeneratedSequence) error
	RecentThemes(ctx context.Context, limit int) ([]*models.GeneratedTheme, error)
	RecentSequences(ctx context.Context, limit int) ([]*models.GeneratedSequence, error)
}

type suggestionRepository struct {
	db *database.DB
}

// NewSuggestionRepository creates a new SuggestionRepository.
func NewSuggestionRepository(db *database.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

var _ SuggestionRepository = (*suggestionRepository)(nil)

func (r *suggestionRepository) InsertTheme(ctx context.Context, theme *models.GeneratedTheme) error {
	query := `
		INSERT INTO app_data.ai_generated_themes (theme_name, theme_approach)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, theme.ThemeName, theme.Approach).
		Scan(&theme.ID, &theme.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert generated theme: %w", err)
	}

	return nil
}

func (r *suggestionRepository) InsertSequence(ctx context.Context, sequence *models.GeneratedSequence) error {
	query := `
		INSERT INTO app_data.ai_generated_sequences (peak_pose, sequence_outline)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, sequence.PeakPose, sequence.Outline).
		Scan(&sequence.ID, &sequence.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert generated sequence: %w", err)
	}

	return nil
}

func (r *suggestionRepository) RecentThemes(ctx context.Context, limit int) ([]*models.GeneratedTheme, error) {
	query := `
		SELECT id, theme_name, theme_approach, created_at
		FROM app_data.ai_generated_themes
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generated themes: %w", err)
	}
	defer rows.Close()

	var themes []*models.GeneratedTheme
	for rows.Next() {
		var t models.GeneratedTheme
		var name, approach *string
		if err := rows.Scan(&t.ID, &name, &approach, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated theme: %w", err)
		}
		t.ThemeName = derefString(name)
		t.Approach = derefString(approach)
		themes = append(themes, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generated themes: %w", err)
	}

	return themes, nil
}

func (r *suggestionRepository) RecentSequences(ctx context.Context, limit int) ([]*models.GeneratedSequence, error) {
	query := `
		SELECT id, peak_pose, sequence_outline, created_at
		FROM app_data.ai_generated_sequences
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generated sequences: %w", err)
	}
	defer rows.Close()

	var sequences []*models.GeneratedSequence
	for rows.Next() {
		var s models.GeneratedSequence
		var pose, outline *string
		if err := rows.Scan(&s.ID, &pose, &outline, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated sequence: %w", err)
		}
		s.PeakPose = derefString(pose)
		s.Outline = derefString(outline)
		sequences = append(sequences, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generated sequences: %w", err)
	}

	return sequences, nil
}
