package services

import (
	"context"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/repositories"
)

// Hand-written mocks for the repository interfaces. Set the function
// fields to control behavior; call counters support verification.

type mockClassRepo struct {
	InsertFunc  func(ctx context.Context, record *models.ClassRecord) error
	HistoryFunc func(ctx context.Context, filter repositories.HistoryFilter) ([]*models.HistoryEntry, error)

	InsertCalls  int
	HistoryCalls int
	LastRecord   *models.ClassRecord
	LastFilter   repositories.HistoryFilter
}

func (m *mockClassRepo) Insert(ctx context.Context, record *models.ClassRecord) error {
	m.InsertCalls++
	m.LastRecord = record
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, record)
	}
	return nil
}

func (m *mockClassRepo) History(ctx context.Context, filter repositories.HistoryFilter) ([]*models.HistoryEntry, error) {
	m.HistoryCalls++
	m.LastFilter = filter
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, filter)
	}
	return nil, nil
}

type mockStatsRepo struct {
	OverallFunc        func(ctx context.Context) (*models.OverallStats, error)
	ByLocationFunc     func(ctx context.Context) ([]*models.LocationStats, error)
	ByClassTypeFunc    func(ctx context.Context) ([]*models.ClassTypeStats, error)
	ByThemeFunc        func(ctx context.Context, limit int) ([]*models.ThemeStats, error)
	StudentTrendFunc   func(ctx context.Context, days int) ([]*models.StudentTrendPoint, error)
	PopularClassesFunc func(ctx context.Context, minStudents int) ([]*models.PopularClass, error)

	ByThemeCalls        int
	LastByThemeLimit    int
	LastTrendDays       int
	LastPopularStudents int
}

func (m *mockStatsRepo) Overall(ctx context.Context) (*models.OverallStats, error) {
	if m.OverallFunc != nil {
		return m.OverallFunc(ctx)
	}
	return &models.OverallStats{}, nil
}

func (m *mockStatsRepo) ByLocation(ctx context.Context) ([]*models.LocationStats, error) {
	if m.ByLocationFunc != nil {
		return m.ByLocationFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsRepo) ByClassType(ctx context.Context) ([]*models.ClassTypeStats, error) {
	if m.ByClassTypeFunc != nil {
		return m.ByClassTypeFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsRepo) ByTheme(ctx context.Context, limit int) ([]*models.ThemeStats, error) {
	m.ByThemeCalls++
	m.LastByThemeLimit = limit
	if m.ByThemeFunc != nil {
		return m.ByThemeFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepo) StudentTrend(ctx context.Context, days int) ([]*models.StudentTrendPoint, error) {
	m.LastTrendDays = days
	if m.StudentTrendFunc != nil {
		return m.StudentTrendFunc(ctx, days)
	}
	return nil, nil
}

func (m *mockStatsRepo) PopularClasses(ctx context.Context, minStudents int) ([]*models.PopularClass, error) {
	m.LastPopularStudents = minStudents
	if m.PopularClassesFunc != nil {
		return m.PopularClassesFunc(ctx, minStudents)
	}
	return nil, nil
}

type mockSuggestionRepo struct {
	InsertThemeFunc     func(ctx context.Context, theme *models.GeneratedTheme) error
	InsertSequenceFunc  func(ctx context.Context, sequence *models.GeneratedSequence) error
	RecentThemesFunc    func(ctx context.Context, limit int) ([]*models.GeneratedTheme, error)
	RecentSequencesFunc func(ctx context.Context, limit int) ([]*models.GeneratedSequence, error)

	InsertThemeCalls    int
	InsertSequenceCalls int
	LastTheme           *models.GeneratedTheme
	LastSequence        *models.GeneratedSequence
	LastRecentLimit     int
}

func (m *mockSuggestionRepo) InsertTheme(ctx context.Context, theme *models.GeneratedTheme) error {
	m.InsertThemeCalls++
	m.LastTheme = theme
	if m.InsertThemeFunc != nil {
		return m.InsertThemeFunc(ctx, theme)
	}
	return nil
}

func (m *mockSuggestionRepo) InsertSequence(ctx context.Context, sequence *models.GeneratedSequence) error {
	m.InsertSequenceCalls++
	m.LastSequence = sequence
	if m.InsertSequenceFunc != nil {
		return m.InsertSequenceFunc(ctx, sequence)
	}
	return nil
}

func (m *mockSuggestionRepo) RecentThemes(ctx context.Context, limit int) ([]*models.GeneratedTheme, error) {
	m.LastRecentLimit = limit
	if m.RecentThemesFunc != nil {
		return m.RecentThemesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockSuggestionRepo) RecentSequences(ctx context.Context, limit int) ([]*models.GeneratedSequence, error) {
	m.LastRecentLimit = limit
	if m.RecentSequencesFunc != nil {
		return m.RecentSequencesFunc(ctx, limit)
	}
	return nil, nil
}

type mockReferenceRepo struct {
	LocationsFunc  func(ctx context.Context) ([]*models.Location, error)
	ClassTypesFunc func(ctx context.Context) ([]*models.ClassType, error)
	ThemesFunc     func(ctx context.Context) ([]*models.Theme, error)
}

func (m *mockReferenceRepo) Locations(ctx context.Context) ([]*models.Location, error) {
	if m.LocationsFunc != nil {
		return m.LocationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReferenceRepo) ClassTypes(ctx context.Context) ([]*models.ClassType, error) {
	if m.ClassTypesFunc != nil {
		return m.ClassTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockReferenceRepo) Themes(ctx context.Context) ([]*models.Theme, error) {
	if m.ThemesFunc != nil {
		return m.ThemesFunc(ctx)
	}
	return nil, nil
}

var (
	_ repositories.ClassRepository      = (*mockClassRepo)(nil)
	_ repositories.StatsRepository      = (*mockStatsRepo)(nil)
	_ repositories.SuggestionRepository = (*mockSuggestionRepo)(nil)
	_ repositories.ReferenceRepository  = (*mockReferenceRepo)(nil)
)
