package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/services"
)

const previewRunes = 60

func renderTone(t models.ToneAnalysis) string {
	return fmt.Sprintf("%s %s %s\n%s\n", labelStyle.Render("Tone:"), toneStyle.Render(t.Tone), t.Emoji, dimStyle.Render(t.Reason))
}

func renderClarity(c models.ClarityReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/100\n", labelStyle.Render("Clarity:"), c.ClarityScore)
	if len(c.Suggestions) > 0 {
		b.WriteString(labelStyle.Render("Suggestions:") + "\n")
		for i, s := range c.Suggestions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
	}
	return b.String()
}

func renderDrafts(ds []models.Draft) string {
	var b strings.Builder
	for i, d := range ds {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, toneStyle.Render("["+d.Tone+"]"), d.Text)
	}
	return b.String()
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= previewRunes {
		return s
	}
	return string(r[:previewRunes-3]) + "..."
}

func renderOutput(out any) string {
	switch v := out.(type) {
	case models.ToneAnalysis:
		return v.Tone + " " + v.Emoji
	case models.ClarityReport:
		return fmt.Sprintf("score %d/100", v.ClarityScore)
	case string:
		return preview(v)
	case []models.Draft:
		return fmt.Sprintf("%d drafts", len(v))
	default:
		return fmt.Sprint(v)
	}
}

func renderHistoryItem(it models.HistoryItem) string {
	return fmt.Sprintf("%s  %-16s %s\n    -> %s\n",
		dimStyle.Render(it.Timestamp.Local().Format(time.DateTime)), it.Type, preview(it.Input.String()), renderOutput(it.Output))
}

func renderStats(st services.HistoryStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entries: %d\n", st.Total)
	if st.Total == 0 {
		return b.String()
	}

	types := make([]string, 0, len(st.ByType))
	for t := range st.ByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(&b, "  %-16s %d\n", t, st.ByType[models.OperationType(t)])
	}

	if st.ClarityChecks > 0 {
		fmt.Fprintf(&b, "Clarity: mean %.1f, median %.1f, min %.0f, max %.0f\n",
			st.ClarityMean, st.ClarityMedian, st.ClarityMin, st.ClarityMax)
	}
	if st.TopTone != "" {
		fmt.Fprintf(&b, "Most frequent tone: %s (%d)\n", st.TopTone, st.TopToneCount)
	}
	fmt.Fprintf(&b, "Average input: %.1f words\n", st.AvgInputWords)
	fmt.Fprintf(&b, "Span: %s to %s\n", st.Oldest.Local().Format(time.DateTime), st.Newest.Local().Format(time.DateTime))
	return b.String()
}
