// Package processors contains small normalization steps applied to raw LLM
// output before structural parsing.
package processors

import "strings"

// StripCodeFence removes a leading/trailing markdown code fence from a
// response. Models frequently wrap JSON in ```json ... ``` even when asked
// not to; isolating the strip here keeps response-format drift from
// silently breaking the structural decode downstream.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
