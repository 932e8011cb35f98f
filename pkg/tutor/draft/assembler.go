package draft

import (
	"strings"

	"prompt-tutor-be/pkg/tutor/slots"
)

// section pairs a display label with the slot that feeds it.
// Order is fixed: role and context frame the objective, constraints and
// output format qualify it.
var sections = []struct {
	label    string
	category string
}{
	{"Role", slots.CategoryRole},
	{"Context", slots.CategoryContext},
	{"Objective", slots.CategoryObjective},
	{"Constraints", slots.CategoryConstraints},
	{"Output Format", slots.CategoryOutputFormat},
}

// Assemble renders the collected slots into the structured draft prompt.
// Only populated sections are emitted; an empty SlotSet yields "".
func Assemble(info slots.SlotSet) string {
	if len(info) == 0 {
		return ""
	}

	var lines []string
	for _, s := range sections {
		if value := info.Get(s.category); value != "" {
			lines = append(lines, "**"+s.label+"**: "+value)
		}
	}

	return strings.Join(lines, "\n")
}
