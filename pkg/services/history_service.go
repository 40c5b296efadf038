package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/apperrors"
	"github.com/alou/yoga-journal/pkg/audit"
	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/repositories"
	sqlcheck "github.com/alou/yoga-journal/pkg/sql"
)

// HistoryDayOptions are the selectable time ranges, in days.
var HistoryDayOptions = []int{7, 14, 30, 90, 365}

// DefaultHistoryDays matches the default range selection.
const DefaultHistoryDays = 30

// HistoryService is the filtered read view over logged classes.
type HistoryService interface {
	// Browse returns classes in the selected window, newest first,
	// optionally filtered by location, class type, and a case-insensitive
	// substring search across effective theme, personal notes, and peak
	// pose.
	Browse(ctx context.Context, filter repositories.HistoryFilter) ([]*models.HistoryEntry, error)
}

type historyService struct {
	classRepo repositories.ClassRepository
	security  *audit.SecurityLogger
	logger    *zap.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(classRepo repositories.ClassRepository, security *audit.SecurityLogger, logger *zap.Logger) HistoryService {
	return &historyService{
		classRepo: classRepo,
		security:  security,
		logger:    logger,
	}
}

var _ HistoryService = (*historyService)(nil)

func (s *historyService) Browse(ctx context.Context, filter repositories.HistoryFilter) ([]*models.HistoryEntry, error) {
	if !validDays(filter.Days) {
		return nil, fmt.Errorf("%w: days must be one of %v", apperrors.ErrValidation, HistoryDayOptions)
	}

	// The filter values are parameter-bound downstream; screening the
	// free-text search is defense in depth.
	if result := sqlcheck.CheckFieldForInjection("search", filter.Search); result != nil {
		s.logger.Warn("search input rejected by injection screening",
			zap.String("fingerprint", result.Fingerprint))
		s.security.LogInjectionAttempt(result)
		return nil, fmt.Errorf("%w: search text", apperrors.ErrSuspectInput)
	}

	return s.classRepo.History(ctx, filter)
}

func validDays(days int) bool {
	for _, d := range HistoryDayOptions {
		if days == d {
			return true
		}
	}
	return false
}
