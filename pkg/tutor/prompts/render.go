package prompts

import (
	"fmt"
	"sort"
	"strings"

	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"
)

// Context carries the six fields a phase template may reference.
type Context struct {
	OriginalPrompt   string
	IdentifiedIssues []string
	CollectedInfo    slots.SlotSet
	IterationCount   int
	RefinedPrompt    string
	ConfidenceScore  float64
}

// Render returns the instructional text for a phase with placeholders
// substituted. Missing fields fall back to documented defaults ("N/A",
// empty list, empty mapping, 0, "", 0) so rendering never fails.
//
// Only the dialogue phases are templated; analyze and complete have no
// collected context to inject and are returned as-is.
func Render(p phase.Phase, ctx Context) string {
	base := Template(p)
	if base == "" {
		return ""
	}

	switch p {
	case phase.Interview, phase.DataCollection, phase.Refine, phase.Validate:
	default:
		return base
	}

	original := ctx.OriginalPrompt
	if original == "" {
		original = "N/A"
	}

	replacer := strings.NewReplacer(
		"{original_prompt}", original,
		"{identified_issues}", formatIssues(ctx.IdentifiedIssues),
		"{collected_info}", formatCollected(ctx.CollectedInfo),
		"{iteration_count}", fmt.Sprintf("%d", ctx.IterationCount),
		"{refined_prompt}", ctx.RefinedPrompt,
		"{confidence_score}", fmt.Sprintf("%.1f", ctx.ConfidenceScore),
	)

	return replacer.Replace(base)
}

func formatIssues(issues []string) string {
	if len(issues) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for i, issue := range issues {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + issue)
	}
	return b.String()
}

func formatCollected(info slots.SlotSet) string {
	if len(info) == 0 {
		return "(nothing collected yet)"
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + k + ": " + info[k])
	}
	return b.String()
}
