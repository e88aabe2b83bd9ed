package models

import "strings"

// ToneAnalysis is the structured result of a tone request.
type ToneAnalysis struct {
	Tone   string `json:"tone"`
	Emoji  string `json:"emoji"`
	Reason string `json:"reason"`
}

// ClarityReport scores readability from 0 to 100 and carries at most
// MaxSuggestions suggestions.
type ClarityReport struct {
	ClarityScore int      `json:"clarityScore"`
	Suggestions  []string `json:"suggestions"`
}

// MaxSuggestions caps ClarityReport.Suggestions.
const MaxSuggestions = 3

// Draft is one generated reply.
type Draft struct {
	Tone string `json:"tone"`
	Text string `json:"text"`
}

// DraftCount is the number of drafts returned per request.
const DraftCount = 3

// ToneOption is a rewrite target offered to the user.
type ToneOption struct {
	Name        string
	Description string
}

// ToneOptions lists the rewrite targets in display order.
var ToneOptions = []ToneOption{
	{Name: "Diplomatic", Description: "Tactful and considerate"},
	{Name: "Direct", Description: "Clear and straightforward"},
	{Name: "Formal", Description: "Professional and structured"},
	{Name: "Casual", Description: "Relaxed and friendly"},
	{Name: "Enthusiastic", Description: "Energetic and positive"},
	{Name: "Sympathetic", Description: "Understanding and caring"},
	{Name: "Assertive", Description: "Confident and firm"},
	{Name: "Polite", Description: "Courteous and respectful"},
}

// LookupTone finds a tone option by case-insensitive name.
func LookupTone(name string) (ToneOption, bool) {
	for _, t := range ToneOptions {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, true
		}
	}
	return ToneOption{}, false
}
