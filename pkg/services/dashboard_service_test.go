package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alou/yoga-journal/pkg/models"
)

func TestMovingAverage_WindowOfThree(t *testing.T) {
	counts := []int{10, 20, 30, 40}
	averages := MovingAverage(counts, 3)

	require.Len(t, averages, 4)
	assert.InDelta(t, 10.0, averages[0], 0.001)
	assert.InDelta(t, 15.0, averages[1], 0.001)
	assert.InDelta(t, 20.0, averages[2], 0.001)
	assert.InDelta(t, 30.0, averages[3], 0.001)
}

func TestMovingAverage_SeriesShorterThanWindow(t *testing.T) {
	counts := []int{12, 18}
	averages := MovingAverage(counts, 3)

	require.Len(t, averages, 2)
	assert.InDelta(t, 12.0, averages[0], 0.001)
	assert.InDelta(t, 15.0, averages[1], 0.001)
}

func TestMovingAverage_ConstantSeries(t *testing.T) {
	counts := []int{7, 7, 7, 7, 7}
	for i, avg := range MovingAverage(counts, 3) {
		assert.InDelta(t, 7.0, avg, 0.001, "position %d", i)
	}
}

func TestMovingAverage_Empty(t *testing.T) {
	assert.Empty(t, MovingAverage(nil, 3))
}

func TestStudentTrend_FillsAveragesAndSummary(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 1+offset, 0, 0, 0, 0, time.UTC)
	}
	statsRepo := &mockStatsRepo{
		StudentTrendFunc: func(ctx context.Context, days int) ([]*models.StudentTrendPoint, error) {
			return []*models.StudentTrendPoint{
				{ClassDate: day(0), StudentCount: 10},
				{ClassDate: day(1), StudentCount: 30},
				{ClassDate: day(2), StudentCount: 20},
			}, nil
		},
	}
	svc := NewDashboardService(statsRepo, zaptest.NewLogger(t))

	points, summary, err := svc.StudentTrend(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 3)
	require.NotNil(t, summary)

	assert.Equal(t, TrendDays, statsRepo.LastTrendDays)
	assert.InDelta(t, 10.0, points[0].MovingAvg, 0.001)
	assert.InDelta(t, 20.0, points[1].MovingAvg, 0.001)
	assert.InDelta(t, 20.0, points[2].MovingAvg, 0.001)

	assert.InDelta(t, 20.0, summary.AvgStudents, 0.001)
	assert.Equal(t, 30, summary.MaxStudents)
	assert.Equal(t, 10, summary.MinStudents)
}

func TestStudentTrend_EmptyWindow(t *testing.T) {
	statsRepo := &mockStatsRepo{}
	svc := NewDashboardService(statsRepo, zaptest.NewLogger(t))

	points, summary, err := svc.StudentTrend(context.Background())
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.Nil(t, summary)
}

func TestStudentTrend_ErrorPropagates(t *testing.T) {
	repoErr := errors.New("view missing")
	statsRepo := &mockStatsRepo{
		StudentTrendFunc: func(ctx context.Context, days int) ([]*models.StudentTrendPoint, error) {
			return nil, repoErr
		},
	}
	svc := NewDashboardService(statsRepo, zaptest.NewLogger(t))

	_, _, err := svc.StudentTrend(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestByTheme_ReadsAllRows(t *testing.T) {
	statsRepo := &mockStatsRepo{}
	svc := NewDashboardService(statsRepo, zaptest.NewLogger(t))

	_, err := svc.ByTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, statsRepo.LastByThemeLimit, "dashboard view is unlimited")
}

func TestDashboard_ErrorNotConvertedToEmpty(t *testing.T) {
	repoErr := errors.New("warehouse unreachable")
	statsRepo := &mockStatsRepo{
		ByLocationFunc: func(ctx context.Context) ([]*models.LocationStats, error) {
			return nil, repoErr
		},
	}
	svc := NewDashboardService(statsRepo, zaptest.NewLogger(t))

	stats, err := svc.ByLocation(context.Background())
	require.Error(t, err)
	assert.Nil(t, stats)
}
