// Package prompts builds the fixed instruction prompts sent to the
// completion endpoint for teaching inspiration.
package prompts

import (
	"fmt"
	"strings"

	"github.com/alou/yoga-journal/pkg/models"
)

// BuildThemePrompt creates the prompt for a new theme suggestion. It
// injects the per-theme teaching rollup and the previously generated
// (theme, approach) pairs so the model can cite numeric patterns and avoid
// repeating itself.
func BuildThemePrompt(history []*models.ThemeStats, past []*models.GeneratedTheme) string {
	var prompt strings.Builder

	prompt.WriteString("You are helping a yoga teacher plan classes based on their teaching history.\n\n")

	prompt.WriteString("MY TEACHING DATA:\n")
	prompt.WriteString(themeHistoryList(history))
	prompt.WriteString("\n\n")

	prompt.WriteString("THEMES I HAVE ALREADY GENERATED:\n")
	prompt.WriteString(pastThemeList(past))
	prompt.WriteString("\n\n")

	prompt.WriteString("Based on this data, suggest a theme for my next class.\n\n")
	prompt.WriteString("RULES:\n")
	prompt.WriteString("1. Reference specific patterns from my teaching data (cite numbers)\n")
	prompt.WriteString("2. If you suggest a theme I have generated before, you MUST suggest a DIFFERENT approach (different angle, different physical focus, different message)\n")
	prompt.WriteString("3. Vary your suggestions - do not repeat the same theme AND same approach\n\n")
	prompt.WriteString("Format your response as:\n")
	prompt.WriteString("THEME: [name]\n")
	prompt.WriteString("DATA INSIGHTS: [what patterns you see in my history - cite specific numbers]\n")
	prompt.WriteString("WHY THIS FITS: [how this theme connects to what works for me]\n")
	prompt.WriteString("APPROACH: [how to teach this theme - what message, physical focus, feeling students leave with]")

	return prompt.String()
}

// BuildSequencePrompt creates the prompt for a sequence suggestion built
// around the teacher's most popular classes (15+ students).
func BuildSequencePrompt(popular []*models.PopularClass, past []*models.GeneratedSequence) string {
	var prompt strings.Builder

	prompt.WriteString("You are helping a yoga teacher plan classes based on their teaching history.\n\n")

	prompt.WriteString("MY MOST POPULAR CLASSES (15+ students):\n")
	prompt.WriteString(popularClassList(popular))
	prompt.WriteString("\n\n")

	prompt.WriteString("SEQUENCES I HAVE ALREADY GENERATED:\n")
	prompt.WriteString(pastSequenceList(past))
	prompt.WriteString("\n\n")

	prompt.WriteString("Based on this data, suggest a peak pose and build a 60-minute sequence.\n\n")
	prompt.WriteString("RULES:\n")
	prompt.WriteString("1. Reference specific patterns from my teaching data (cite numbers)\n")
	prompt.WriteString("2. If you suggest a peak pose I have generated before, you MUST create a DIFFERENT sequence approach (different warmup, different standing poses, different prep)\n")
	prompt.WriteString("3. Ensure the sequence is anatomically sound - proper warm-up for the peak, appropriate counter-poses\n")
	prompt.WriteString("4. Vary your suggestions - do not repeat the same pose AND same sequence style\n\n")
	prompt.WriteString("Format your response as:\n")
	prompt.WriteString("PEAK POSE: [name]\n")
	prompt.WriteString("DATA INSIGHTS: [what patterns you see in my history - cite specific numbers]\n")
	prompt.WriteString("WHY THIS FITS: [how this connects to what works for me]\n")
	prompt.WriteString("SEQUENCE:\n")
	prompt.WriteString("- Warmup (10 min): [poses]\n")
	prompt.WriteString("- Standing (15 min): [poses]\n")
	prompt.WriteString("- Peak Prep (20 min): [poses]\n")
	prompt.WriteString("- Cool Down (10 min): [poses]\n")
	prompt.WriteString("- Savasana (5 min)")

	return prompt.String()
}

func themeHistoryList(history []*models.ThemeStats) string {
	if len(history) == 0 {
		return "No history yet"
	}
	parts := make([]string, 0, len(history))
	for _, h := range history {
		parts = append(parts, fmt.Sprintf("%s (taught %dx, avg %.0f students)",
			h.Theme, h.TimesTaught, h.AvgStudents))
	}
	return strings.Join(parts, "; ")
}

func pastThemeList(past []*models.GeneratedTheme) string {
	if len(past) == 0 {
		return "None yet"
	}
	parts := make([]string, 0, len(past))
	for _, p := range past {
		parts = append(parts, fmt.Sprintf("Theme: %s | Approach: %s", p.ThemeName, p.Approach))
	}
	return strings.Join(parts, " /// ")
}

func popularClassList(popular []*models.PopularClass) string {
	if len(popular) == 0 {
		return "no data"
	}
	parts := make([]string, 0, len(popular))
	for _, c := range popular {
		parts = append(parts, fmt.Sprintf("Theme: %s, Peak: %s, Energy: %s, Students: %d",
			orDefault(c.Theme, "none"),
			orDefault(c.PeakPose, "none"),
			orDefault(c.EnergyLevel, "medium"),
			c.StudentCount))
	}
	return strings.Join(parts, " | ")
}

func pastSequenceList(past []*models.GeneratedSequence) string {
	if len(past) == 0 {
		return "None yet"
	}
	parts := make([]string, 0, len(past))
	for _, p := range past {
		parts = append(parts, fmt.Sprintf("Peak: %s | Sequence: %s", p.PeakPose, p.Outline))
	}
	return strings.Join(parts, " /// ")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
