package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/apperrors"
	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/refcache"
	"github.com/alou/yoga-journal/pkg/repositories"
)

// UI-level range clamps, re-validated server-side.
const (
	MinVibeRating   = 1
	MaxVibeRating   = 5
	MaxStudentCount = 60
)

// LogClassInput carries the scalar form fields for one class log.
type LogClassInput struct {
	Date          time.Time
	Time          string // "HH:MM", optional
	LocationID    int64
	ClassTypeID   int64
	Theme         string // free text; matched against the catalog
	Intention     string
	PeakPose      string
	SequenceNotes *models.SequenceNotes
	EnergyLevel   string
	StudentCount  int
	VibeRating    int
	PersonalNotes string
}

// JournalService logs classes. One successful call commits exactly one
// class record; validation failures perform no write.
type JournalService interface {
	// LogClass validates the input, derives day-of-week from the date,
	// matches the free-text theme against the catalog, and inserts the
	// record. On success the reference cache is invalidated so freshly
	// logged data is visible on the next read.
	LogClass(ctx context.Context, input *LogClassInput) (*models.ClassRecord, error)
}

type journalService struct {
	classRepo repositories.ClassRepository
	refCache  *refcache.Cache
	logger    *zap.Logger
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	classRepo repositories.ClassRepository,
	refCache *refcache.Cache,
	logger *zap.Logger,
) JournalService {
	return &journalService{
		classRepo: classRepo,
		refCache:  refCache,
		logger:    logger,
	}
}

var _ JournalService = (*journalService)(nil)

func (s *journalService) LogClass(ctx context.Context, input *LogClassInput) (*models.ClassRecord, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	record := &models.ClassRecord{
		ClassDate:     input.Date,
		ClassTime:     input.Time,
		DayOfWeek:     input.Date.Weekday().String(),
		LocationID:    &input.LocationID,
		ClassTypeID:   &input.ClassTypeID,
		CustomTheme:   input.Theme,
		Intention:     input.Intention,
		PeakPose:      input.PeakPose,
		EnergyLevel:   input.EnergyLevel,
		StudentCount:  input.StudentCount,
		VibeRating:    input.VibeRating,
		PersonalNotes: input.PersonalNotes,
	}

	if !input.SequenceNotes.IsEmpty() {
		record.SequenceNotes = input.SequenceNotes
	}

	if themeID := s.matchCatalogTheme(ctx, input.Theme); themeID != nil {
		record.ThemeID = themeID
	}

	if err := s.classRepo.Insert(ctx, record); err != nil {
		return nil, err
	}

	// Freshly logged data must be visible on the next reference read.
	s.refCache.Invalidate()

	s.logger.Info("class logged",
		zap.Int64("class_id", record.ID),
		zap.String("class_date", record.ClassDate.Format("2006-01-02")),
		zap.String("day_of_week", record.DayOfWeek),
		zap.Int("student_count", record.StudentCount))

	return record, nil
}

func (s *journalService) validate(input *LogClassInput) error {
	if input.LocationID == 0 || input.ClassTypeID == 0 {
		return fmt.Errorf("%w: a location and class type must be selected", apperrors.ErrValidation)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: class date is required", apperrors.ErrValidation)
	}
	if input.Time != "" {
		if _, err := time.Parse("15:04", input.Time); err != nil {
			return fmt.Errorf("%w: class time must be HH:MM", apperrors.ErrValidation)
		}
	}
	if input.VibeRating < MinVibeRating || input.VibeRating > MaxVibeRating {
		return fmt.Errorf("%w: vibe rating must be between %d and %d",
			apperrors.ErrValidation, MinVibeRating, MaxVibeRating)
	}
	if input.StudentCount < 0 || input.StudentCount > MaxStudentCount {
		return fmt.Errorf("%w: student count must be between 0 and %d",
			apperrors.ErrValidation, MaxStudentCount)
	}
	if input.EnergyLevel != "" && !models.ValidEnergyLevel(input.EnergyLevel) {
		return fmt.Errorf("%w: energy level must be one of %s",
			apperrors.ErrValidation, strings.Join(models.EnergyLevels, ", "))
	}
	return nil
}

// matchCatalogTheme resolves free-text theme input to a catalog theme by
// case-insensitive equality. No match is not an error; the free text alone
// becomes the effective theme.
func (s *journalService) matchCatalogTheme(ctx context.Context, themeText string) *int64 {
	if themeText == "" {
		return nil
	}

	themes, err := s.refCache.Themes(ctx)
	if err != nil {
		// The link is an analytics enrichment; the log itself must not
		// fail because the catalog was unreadable.
		s.logger.Warn("could not load themes for catalog match", zap.Error(err))
		return nil
	}

	for _, t := range themes {
		if strings.EqualFold(t.Name, themeText) {
			id := t.ID
			return &id
		}
	}
	return nil
}
