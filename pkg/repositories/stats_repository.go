package repositories

import (
	"context"
	"fmt"

	"github.com/alou/yoga-journal/pkg/database"
	"github.com/alou/yoga-journal/pkg/models"
)

// StatsRepository provides the fixed battery of aggregate reads behind the
// dashboard and the suggestion generators. All queries are read-only; the
// rollups come from the precomputed analytics views.
type StatsRepository interface {
	Overall(ctx context.Context) (*models.OverallStats, error)
	ByLocation(ctx context.Context) ([]*models.LocationStats, error)
	ByClassType(ctx context.Context) ([]*models.ClassTypeStats, error)
	ByTheme(ctx context.Context, limit int) ([]*models.ThemeStats, error)
	StudentTrend(ctx context.Context, days int) ([]*models.StudentTrendPoint, error)
	PopularClasses(ctx context.Context, minStudents int) ([]*models.PopularClass, error)
}

type statsRepository struct {
	db *database.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *database.DB) StatsRepository {
	return &statsRepository{db: db}
}

var _ StatsRepository = (*statsRepository)(nil)

func (r *statsRepository) Overall(ctx context.Context) (*models.OverallStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_classes,
			COALESCE(SUM(student_count), 0) AS total_students,
			ROUND(AVG(vibe_rating), 1) AS avg_vibe,
			COUNT(DISTINCT location_id) AS locations_taught,
			COUNT(DISTINCT theme_id) AS unique_themes
		FROM app_data.classes_taught`

	var stats models.OverallStats
	var avgVibe *float64
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalClasses,
		&stats.TotalStudents,
		&avgVibe,
		&stats.LocationsTaught,
		&stats.UniqueThemes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overall stats: %w", err)
	}
	if avgVibe != nil {
		stats.AvgVibe = *avgVibe
	}

	return &stats, nil
}

func (r *statsRepository) ByLocation(ctx context.Context) ([]*models.LocationStats, error) {
	query := `
		SELECT location_name, total_classes, avg_vibe, avg_students
		FROM analytics.location_stats
		ORDER BY total_classes DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query location stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.LocationStats
	for rows.Next() {
		var s models.LocationStats
		var avgVibe, avgStudents *float64
		if err := rows.Scan(&s.LocationName, &s.TotalClasses, &avgVibe, &avgStudents); err != nil {
			return nil, fmt.Errorf("failed to scan location stats: %w", err)
		}
		if avgVibe != nil {
			s.AvgVibe = *avgVibe
		}
		if avgStudents != nil {
			s.AvgStudents = *avgStudents
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepository) ByClassType(ctx context.Context) ([]*models.ClassTypeStats, error) {
	query := `
		SELECT class_type, is_heated, total_classes, avg_vibe, avg_students
		FROM analytics.class_type_stats
		ORDER BY total_classes DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query class type stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.ClassTypeStats
	for rows.Next() {
		var s models.ClassTypeStats
		var classType *string
		var avgVibe, avgStudents *float64
		if err := rows.Scan(&classType, &s.IsHeated, &s.TotalClasses, &avgVibe, &avgStudents); err != nil {
			return nil, fmt.Errorf("failed to scan class type stats: %w", err)
		}
		if classType != nil {
			s.ClassType = *classType
		}
		if avgVibe != nil {
			s.AvgVibe = *avgVibe
		}
		if avgStudents != nil {
			s.AvgStudents = *avgStudents
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class type stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepository) ByTheme(ctx context.Context, limit int) ([]*models.ThemeStats, error) {
	query := `
		SELECT theme, times_taught, avg_vibe, avg_students
		FROM analytics.theme_stats
		ORDER BY times_taught DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query theme stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.ThemeStats
	for rows.Next() {
		var s models.ThemeStats
		var avgVibe, avgStudents *float64
		if err := rows.Scan(&s.Theme, &s.TimesTaught, &avgVibe, &avgStudents); err != nil {
			return nil, fmt.Errorf("failed to scan theme stats: %w", err)
		}
		if avgVibe != nil {
			s.AvgVibe = *avgVibe
		}
		if avgStudents != nil {
			s.AvgStudents = *avgStudents
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating theme stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepository) StudentTrend(ctx context.Context, days int) ([]*models.StudentTrendPoint, error) {
	query := `
		SELECT
			c.class_date,
			c.student_count,
			ct.display_name AS class_type,
			l.location_name
		FROM app_data.classes_taught c
		LEFT JOIN app_data.class_types ct ON c.class_type_id = ct.class_type_id
		LEFT JOIN app_data.locations l ON c.location_id = l.location_id
		WHERE c.class_date >= CURRENT_DATE - $1::int
		ORDER BY c.class_date, c.class_time`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query student trend: %w", err)
	}
	defer rows.Close()

	var points []*models.StudentTrendPoint
	for rows.Next() {
		var p models.StudentTrendPoint
		var studentCount *int
		var classType, locationName *string
		if err := rows.Scan(&p.ClassDate, &studentCount, &classType, &locationName); err != nil {
			return nil, fmt.Errorf("failed to scan student trend point: %w", err)
		}
		if studentCount != nil {
			p.StudentCount = *studentCount
		}
		if classType != nil {
			p.ClassType = *classType
		}
		if locationName != nil {
			p.LocationName = *locationName
		}
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student trend: %w", err)
	}

	return points, nil
}

func (r *statsRepository) PopularClasses(ctx context.Context, minStudents int) ([]*models.PopularClass, error) {
	query := `
		SELECT
			COALESCE(t.theme_name, c.custom_theme) AS theme,
			c.peak_pose,
			c.energy_level,
			c.student_count
		FROM app_data.classes_taught c
		LEFT JOIN app_data.themes t ON c.theme_id = t.theme_id
		WHERE c.student_count >= $1
		ORDER BY c.student_count DESC`

	rows, err := r.db.Query(ctx, query, minStudents)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.PopularClass
	for rows.Next() {
		var c models.PopularClass
		var theme, peakPose, energyLevel *string
		if err := rows.Scan(&theme, &peakPose, &energyLevel, &c.StudentCount); err != nil {
			return nil, fmt.Errorf("failed to scan popular class: %w", err)
		}
		c.Theme = derefString(theme)
		c.PeakPose = derefString(peakPose)
		c.EnergyLevel = derefString(energyLevel)
		classes = append(classes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating popular classes: %w", err)
	}

	return classes, nil
}
