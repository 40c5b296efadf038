package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/repositories"
)

// Dashboard window constants.
const (
	TrendDays     = 90 // rolling window for the student-count series
	MovingWindow  = 3  // trailing classes per moving-average point
	ThemeTopLimit = 10 // rows in the teaching-history preview
)

// TrendSummary holds the min/avg/max shown under the student-count series.
type TrendSummary struct {
	AvgStudents float64 `json:"avg_students"`
	MaxStudents int     `json:"max_students"`
	MinStudents int     `json:"min_students"`
}

// DashboardService materializes the fixed battery of aggregate reads for
// charting. Failures are returned to the caller; an error is never
// converted into an empty result.
type DashboardService interface {
	Overall(ctx context.Context) (*models.OverallStats, error)
	ByLocation(ctx context.Context) ([]*models.LocationStats, error)
	ByClassType(ctx context.Context) ([]*models.ClassTypeStats, error)
	ByTheme(ctx context.Context) ([]*models.ThemeStats, error)

	// StudentTrend returns the 90-day per-class student counts in
	// chronological order with the 3-class trailing moving average filled
	// in, plus the window summary. The summary is nil when the window is
	// empty.
	StudentTrend(ctx context.Context) ([]*models.StudentTrendPoint, *TrendSummary, error)
}

type dashboardService struct {
	statsRepo repositories.StatsRepository
	logger    *zap.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(statsRepo repositories.StatsRepository, logger *zap.Logger) DashboardService {
	return &dashboardService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

var _ DashboardService = (*dashboardService)(nil)

func (s *dashboardService) Overall(ctx context.Context) (*models.OverallStats, error) {
	return s.statsRepo.Overall(ctx)
}

func (s *dashboardService) ByLocation(ctx context.Context) ([]*models.LocationStats, error) {
	return s.statsRepo.ByLocation(ctx)
}

func (s *dashboardService) ByClassType(ctx context.Context) ([]*models.ClassTypeStats, error) {
	return s.statsRepo.ByClassType(ctx)
}

func (s *dashboardService) ByTheme(ctx context.Context) ([]*models.ThemeStats, error) {
	return s.statsRepo.ByTheme(ctx, 0)
}

func (s *dashboardService) StudentTrend(ctx context.Context) ([]*models.StudentTrendPoint, *TrendSummary, error) {
	points, err := s.statsRepo.StudentTrend(ctx, TrendDays)
	if err != nil {
		return nil, nil, err
	}
	if len(points) == 0 {
		return nil, nil, nil
	}

	counts := make([]int, len(points))
	for i, p := range points {
		counts[i] = p.StudentCount
	}

	averages := MovingAverage(counts, MovingWindow)
	for i := range points {
		points[i].MovingAvg = averages[i]
	}

	return points, summarize(counts), nil
}

// MovingAverage computes a trailing moving average over counts: the value
// at position i is the mean of counts[max(0,i-window+1)..i].
func MovingAverage(counts []int, window int) []float64 {
	averages := make([]float64, len(counts))
	for i := range counts {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0
		for _, c := range counts[start : i+1] {
			sum += c
		}
		averages[i] = float64(sum) / float64(i+1-start)
	}
	return averages
}

func summarize(counts []int) *TrendSummary {
	summary := &TrendSummary{
		MaxStudents: counts[0],
		MinStudents: counts[0],
	}
	sum := 0
	for _, c := range counts {
		sum += c
		if c > summary.MaxStudents {
			summary.MaxStudents = c
		}
		if c < summary.MinStudents {
			summary.MinStudents = c
		}
	}
	summary.AvgStudents = float64(sum) / float64(len(counts))
	return summary
}
