package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alou/yoga-journal/pkg/apperrors"
	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/repositories"
)

func TestBrowse_PassesFilterThrough(t *testing.T) {
	classRepo := &mockClassRepo{
		HistoryFunc: func(ctx context.Context, filter repositories.HistoryFilter) ([]*models.HistoryEntry, error) {
			return []*models.HistoryEntry{{ClassID: 1}}, nil
		},
	}
	svc := NewHistoryService(classRepo, nil, zaptest.NewLogger(t))

	filter := repositories.HistoryFilter{
		Days:         30,
		LocationName: "Equinox Pine Street",
		ClassType:    "Vinyasa 60 (Heated)",
		Search:       "pigeon",
	}

	entries, err := svc.Browse(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, filter, classRepo.LastFilter)
}

func TestBrowse_AcceptsEveryOfferedRange(t *testing.T) {
	for _, days := range HistoryDayOptions {
		classRepo := &mockClassRepo{}
		svc := NewHistoryService(classRepo, nil, zaptest.NewLogger(t))

		_, err := svc.Browse(context.Background(), repositories.HistoryFilter{Days: days})
		require.NoError(t, err, "days=%d", days)
	}
}

func TestBrowse_RejectsUnknownRange(t *testing.T) {
	for _, days := range []int{0, -7, 31, 100} {
		classRepo := &mockClassRepo{}
		svc := NewHistoryService(classRepo, nil, zaptest.NewLogger(t))

		_, err := svc.Browse(context.Background(), repositories.HistoryFilter{Days: days})
		require.Error(t, err, "days=%d", days)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, 0, classRepo.HistoryCalls)
	}
}

func TestBrowse_RejectsSuspectSearchText(t *testing.T) {
	classRepo := &mockClassRepo{}
	svc := NewHistoryService(classRepo, nil, zaptest.NewLogger(t))

	filter := repositories.HistoryFilter{
		Days:   30,
		Search: "' OR 1=1 --",
	}

	_, err := svc.Browse(context.Background(), filter)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSuspectInput)
	assert.Equal(t, 0, classRepo.HistoryCalls, "suspect input must not reach the repository")
}

func TestBrowse_PlainSearchTextPasses(t *testing.T) {
	classRepo := &mockClassRepo{}
	svc := NewHistoryService(classRepo, nil, zaptest.NewLogger(t))

	filter := repositories.HistoryFilter{Days: 7, Search: "wheel pose gratitude"}

	_, err := svc.Browse(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, classRepo.HistoryCalls)
}
