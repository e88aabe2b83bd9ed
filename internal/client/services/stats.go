package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/montanaflynn/stats"
)

// HistoryStats summarises a user's history.
type HistoryStats struct {
	Total  int
	ByType map[models.OperationType]int

	// Clarity figures are zero when no clarity checks were recorded.
	ClarityChecks int
	ClarityMean   float64
	ClarityMedian float64
	ClarityMin    float64
	ClarityMax    float64

	// TopTone is the most frequently detected tone; ties go to the
	// alphabetically first.
	TopTone      string
	TopToneCount int

	// AvgInputWords is the mean word count of text inputs.
	AvgInputWords float64

	Oldest time.Time
	Newest time.Time
}

func (h *historyService) Stats(ctx context.Context, email string) (HistoryStats, error) {
	items, err := h.List(ctx, email)
	if err != nil {
		return HistoryStats{}, err
	}
	return Summarize(items), nil
}

// Summarize computes HistoryStats over items.
func Summarize(items []models.HistoryItem) HistoryStats {
	st := HistoryStats{
		Total:  len(items),
		ByType: make(map[models.OperationType]int),
	}

	var scores, words stats.Float64Data
	tones := make(map[string]int)

	for _, it := range items {
		st.ByType[it.Type]++

		if st.Oldest.IsZero() || it.Timestamp.Before(st.Oldest) {
			st.Oldest = it.Timestamp
		}
		if it.Timestamp.After(st.Newest) {
			st.Newest = it.Timestamp
		}

		if it.Input.Draft == nil {
			words = append(words, float64(len(strings.Fields(it.Input.Text))))
		}

		switch out := it.Output.(type) {
		case models.ClarityReport:
			scores = append(scores, float64(out.ClarityScore))
		case models.ToneAnalysis:
			if out.Tone != "" {
				tones[out.Tone]++
			}
		}
	}

	if len(scores) > 0 {
		st.ClarityChecks = len(scores)
		st.ClarityMean, _ = stats.Mean(scores)
		st.ClarityMedian, _ = stats.Median(scores)
		st.ClarityMin, _ = stats.Min(scores)
		st.ClarityMax, _ = stats.Max(scores)
	}
	if len(words) > 0 {
		st.AvgInputWords, _ = stats.Mean(words)
	}

	names := make([]string, 0, len(tones))
	for name := range tones {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if tones[name] > st.TopToneCount {
			st.TopTone, st.TopToneCount = name, tones[name]
		}
	}
	return st
}
