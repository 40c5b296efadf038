package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/apperrors"
	"github.com/alou/yoga-journal/pkg/llm"
	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/prompts"
	"github.com/alou/yoga-journal/pkg/repositories"
	"github.com/alou/yoga-journal/pkg/suggest"
)

// Suggestion generation constants.
const (
	// SuggestionContextLimit caps how many prior suggestions feed the
	// novelty-avoidance section of a prompt.
	SuggestionContextLimit = 5

	// PopularStudentFloor is the student count that makes a class
	// "popular" for sequence context.
	PopularStudentFloor = 15
)

// InspirationService generates theme and sequence suggestions from the
// teaching history via the completion endpoint. The raw suggestion text is
// held in a per-session result store until explicitly cleared.
type InspirationService interface {
	// SuggestTheme reads the per-theme rollup and recent prior theme
	// suggestions, prompts the model, persists the parsed (theme,
	// approach) pair as future context, and returns the display text.
	SuggestTheme(ctx context.Context, sessionID string) (string, error)

	// SuggestSequence does the same over classes with 15+ students,
	// persisting the parsed (peak pose, outline) pair.
	SuggestSequence(ctx context.Context, sessionID string) (string, error)

	// LastResult returns the stored suggestion for a session.
	LastResult(sessionID string, kind SuggestionKind) (string, bool)

	// ClearResult discards the displayed suggestion. The persisted log row
	// is untouched.
	ClearResult(sessionID string, kind SuggestionKind)

	// HistoryPreview returns the top themes feeding personalization, for
	// display next to the generators.
	HistoryPreview(ctx context.Context) ([]*models.ThemeStats, error)
}

type inspirationService struct {
	statsRepo      repositories.StatsRepository
	suggestionRepo repositories.SuggestionRepository
	client         llm.CompletionClient
	temperature    float64
	results        *ResultStore
	logger         *zap.Logger
}

// NewInspirationService creates a new InspirationService.
func NewInspirationService(
	statsRepo repositories.StatsRepository,
	suggestionRepo repositories.SuggestionRepository,
	client llm.CompletionClient,
	temperature float64,
	results *ResultStore,
	logger *zap.Logger,
) InspirationService {
	return &inspirationService{
		statsRepo:      statsRepo,
		suggestionRepo: suggestionRepo,
		client:         client,
		temperature:    temperature,
		results:        results,
		logger:         logger,
	}
}

var _ InspirationService = (*inspirationService)(nil)

func (s *inspirationService) SuggestTheme(ctx context.Context, sessionID string) (string, error) {
	history, err := s.statsRepo.ByTheme(ctx, 0)
	if err != nil {
		s.results.Clear(sessionID, KindTheme)
		return "", err
	}

	past, err := s.suggestionRepo.RecentThemes(ctx, SuggestionContextLimit)
	if err != nil {
		s.results.Clear(sessionID, KindTheme)
		return "", err
	}

	prompt := prompts.BuildThemePrompt(history, past)
	text, err := s.client.Complete(ctx, prompt, s.temperature)
	if err != nil {
		s.results.Clear(sessionID, KindTheme)
		return "", err
	}

	// Best-effort enrichment: a response missing the expected labels is
	// still shown, it just cannot feed future de-duplication context.
	if parsed, err := suggest.ParseTheme(text); err != nil {
		if errors.Is(err, apperrors.ErrMissingLabel) {
			s.logger.Debug("theme suggestion missing labels, skipping persistence")
		}
	} else {
		generated := &models.GeneratedTheme{
			ThemeName: parsed.Theme,
			Approach:  parsed.Approach,
		}
		if err := s.suggestionRepo.InsertTheme(ctx, generated); err != nil {
			s.logger.Warn("failed to persist generated theme", zap.Error(err))
		}
	}

	display := suggest.Unescape(text)
	s.results.Set(sessionID, KindTheme, display)

	s.logger.Info("theme suggestion generated",
		zap.String("model", s.client.GetModel()),
		zap.Int("length", len(display)))
	return display, nil
}

func (s *inspirationService) SuggestSequence(ctx context.Context, sessionID string) (string, error) {
	popular, err := s.statsRepo.PopularClasses(ctx, PopularStudentFloor)
	if err != nil {
		s.results.Clear(sessionID, KindSequence)
		return "", err
	}

	past, err := s.suggestionRepo.RecentSequences(ctx, SuggestionContextLimit)
	if err != nil {
		s.results.Clear(sessionID, KindSequence)
		return "", err
	}

	prompt := prompts.BuildSequencePrompt(popular, past)
	text, err := s.client.Complete(ctx, prompt, s.temperature)
	if err != nil {
		s.results.Clear(sessionID, KindSequence)
		return "", err
	}

	if parsed, err := suggest.ParseSequence(text); err != nil {
		if errors.Is(err, apperrors.ErrMissingLabel) {
			s.logger.Debug("sequence suggestion missing labels, skipping persistence")
		}
	} else {
		generated := &models.GeneratedSequence{
			PeakPose: parsed.PeakPose,
			Outline:  parsed.Outline,
		}
		if err := s.suggestionRepo.InsertSequence(ctx, generated); err != nil {
			s.logger.Warn("failed to persist generated sequence", zap.Error(err))
		}
	}

	display := suggest.Unescape(text)
	s.results.Set(sessionID, KindSequence, display)

	s.logger.Info("sequence suggestion generated",
		zap.String("model", s.client.GetModel()),
		zap.Int("length", len(display)))
	return display, nil
}

func (s *inspirationService) LastResult(sessionID string, kind SuggestionKind) (string, bool) {
	return s.results.Get(sessionID, kind)
}

func (s *inspirationService) ClearResult(sessionID string, kind SuggestionKind) {
	s.results.Clear(sessionID, kind)
}

func (s *inspirationService) HistoryPreview(ctx context.Context) ([]*models.ThemeStats, error) {
	return s.statsRepo.ByTheme(ctx, ThemeTopLimit)
}
