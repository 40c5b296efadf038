// Package suggest parses the free-text output of the completion model.
// The model is instructed to emit fixed labels; this parser slices text
// between them and nothing more. A missing label is a defined, recoverable
// condition: the caller skips enrichment persistence and still displays the
// raw suggestion.
package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/alou/yoga-journal/pkg/apperrors"
)

// Truncation budgets applied before persisting parsed fields as future
// prompt context.
const (
	ApproachMaxChars = 300
	OutlineMaxChars  = 500
)

// ThemeSuggestion holds the fields extracted from a theme suggestion.
type ThemeSuggestion struct {
	Theme    string
	Approach string
}

// SequenceSuggestion holds the fields extracted from a sequence suggestion.
type SequenceSuggestion struct {
	PeakPose string
	Outline  string
}

// ParseTheme extracts the THEME and APPROACH fields from a suggestion.
// The theme is the remainder of the THEME: line; the approach is everything
// after APPROACH:, truncated to ApproachMaxChars. A missing THEME label
// returns apperrors.ErrMissingLabel; a missing APPROACH label leaves
// Approach empty, matching the best-effort nature of the enrichment.
func ParseTheme(text string) (*ThemeSuggestion, error) {
	theme, ok := lineAfter(text, "THEME:")
	if !ok || theme == "" {
		return nil, apperrors.ErrMissingLabel
	}

	approach := ""
	if rest, ok := after(text, "APPROACH:"); ok {
		approach = truncate(strings.TrimSpace(rest), ApproachMaxChars)
	}

	return &ThemeSuggestion{Theme: theme, Approach: approach}, nil
}

// ParseSequence extracts the PEAK POSE and SEQUENCE fields from a
// suggestion. Both labels are required; the outline is everything after
// SEQUENCE:, truncated to OutlineMaxChars.
func ParseSequence(text string) (*SequenceSuggestion, error) {
	pose, ok := lineAfter(text, "PEAK POSE:")
	if !ok || pose == "" {
		return nil, apperrors.ErrMissingLabel
	}

	rest, ok := after(text, "SEQUENCE:")
	if !ok {
		return nil, apperrors.ErrMissingLabel
	}

	return &SequenceSuggestion{
		PeakPose: pose,
		Outline:  truncate(strings.TrimSpace(rest), OutlineMaxChars),
	}, nil
}

// Unescape rewrites literal \n and \t escape sequences as real whitespace
// so a raw suggestion reads cleanly when displayed.
func Unescape(text string) string {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "\t")
	return text
}

// lineAfter returns the trimmed remainder of the line containing label.
func lineAfter(text, label string) (string, bool) {
	rest, ok := after(text, label)
	if !ok {
		return "", false
	}
	line, _, _ := strings.Cut(rest, "\n")
	return strings.TrimSpace(line), true
}

// after returns everything following the first occurrence of label.
func after(text, label string) (string, bool) {
	_, rest, ok := strings.Cut(text, label)
	if !ok {
		return "", false
	}
	return rest, true
}

// truncate clips s to at most max characters. The budget counts runes,
// not bytes; a byte slice could split a multi-byte character and the
// resulting invalid UTF-8 would be rejected on persistence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
