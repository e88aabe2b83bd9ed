package gateway

import "fmt"

func tonePrompt(text string) string {
	return fmt.Sprintf(`Analyze the tone of the following text. Provide the dominant tone, a suitable emoji, and a brief reason. Text: "%s"`, text)
}

func rewritePrompt(text, tone string) string {
	return fmt.Sprintf(`Rewrite the following text to have a more "%s" tone, while preserving the core message. Return only the rewritten text. Text: "%s"`, tone, text)
}

func clarityPrompt(text string) string {
	return fmt.Sprintf(`Analyze the clarity and readability of the following text. Provide a clarity score from 0 to 100. Also, provide up to 3 specific, actionable suggestions for improvement. Text: "%s"`, text)
}

func draftsPrompt(message, instruction string) string {
	return fmt.Sprintf("Based on the following incoming message and user instruction, generate 3 complete draft replies with varying tones (e.g., Direct, Sympathetic, Detailed).\n\nIncoming Message:\n\"%s\"\n\nUser Instruction:\n\"%s\"", message, instruction)
}

var toneSchema = &Schema{
	Type: typeObject,
	Properties: map[string]*Schema{
		"tone":   {Type: typeString, Description: "The dominant tone (e.g., Formal, Casual, Confident)."},
		"emoji":  {Type: typeString, Description: "A single emoji that represents the tone."},
		"reason": {Type: typeString, Description: "A brief explanation for the tone analysis."},
	},
	Required: []string{"tone", "emoji", "reason"},
}

var claritySchema = &Schema{
	Type: typeObject,
	Properties: map[string]*Schema{
		"clarityScore": {Type: typeInteger, Description: "A clarity score from 0 (very unclear) to 100 (very clear)."},
		"suggestions": {
			Type:        typeArray,
			Items:       &Schema{Type: typeString},
			Description: "An array of actionable suggestions.",
		},
	},
	Required: []string{"clarityScore", "suggestions"},
}

var draftsSchema = &Schema{
	Type: typeArray,
	Items: &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"tone": {Type: typeString, Description: "The tone of the draft (e.g., Direct, Sympathetic)."},
			"text": {Type: typeString, Description: "The full text of the draft reply."},
		},
		Required: []string{"tone", "text"},
	},
}
