package extract

import (
	"strings"

	"prompt-tutor-be/pkg/tutor/slots"
)

// Keyword triggers for the degraded extraction path. Case-insensitive
// substring match against the whole message.
var fallbackKeywords = map[string][]string{
	slots.CategoryObjective:    {"create", "generate", "write", "make", "produce", "build", "want", "need"},
	slots.CategoryContext:      {"for ", "students", "professionals", "children", "users", "clients", "audience", "company"},
	slots.CategoryConstraints:  {"words", "characters", "paragraphs", "short", "long", "formal", "informal", "technical", "simple"},
	slots.CategoryOutputFormat: {"list", "bullet", "table", "json", "markdown", "html"},
	slots.CategoryRole:         {"expert", "tutor", "assistant", "consultant", "act as"},
}

// Fallback is the deterministic keyword heuristic used when the classifier
// is unavailable. Each category is checked independently, so one message
// can populate several slots in a single call.
//
// Unlike the primary path's longer-wins rule, non-constraint slots here
// are first-match-wins: the full raw message is stored only if the slot is
// still empty. Constraints always append. Mutates and returns info.
func Fallback(userText string, info slots.SlotSet) slots.SlotSet {
	lowered := strings.ToLower(userText)

	for _, category := range slots.Categories {
		if !matchesAny(lowered, fallbackKeywords[category]) {
			continue
		}
		if category == slots.CategoryConstraints {
			info.Merge(slots.CategoryConstraints, userText)
			continue
		}
		if !info.Has(category) {
			info[category] = userText
		}
	}

	return info
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
