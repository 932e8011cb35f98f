package slots

// Slot categories collected during the refinement dialogue.
const (
	CategoryObjective    = "objective"
	CategoryContext      = "context"
	CategoryConstraints  = "constraints"
	CategoryOutputFormat = "output_format"
	CategoryRole         = "role"

	// CategoryNone is the sentinel returned by the classifier when a user
	// turn carries no extractable information.
	CategoryNone = "none"
)

// ConstraintSeparator joins accumulated constraint values.
const ConstraintSeparator = " | "

// Categories lists all real slot names in weight order.
var Categories = []string{
	CategoryObjective,
	CategoryContext,
	CategoryConstraints,
	CategoryOutputFormat,
	CategoryRole,
}

// IsValidCategory reports whether cat names a real slot (not the sentinel).
func IsValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// SlotSet maps slot names to free-text values collected from the user.
// Absence of a key is distinct from an empty value.
type SlotSet map[string]string

func New() SlotSet {
	return make(SlotSet)
}

// FromMap builds a SlotSet from a persisted string map, keeping only real slots.
func FromMap(m map[string]string) SlotSet {
	s := New()
	for k, v := range m {
		if IsValidCategory(k) {
			s[k] = v
		}
	}
	return s
}

func (s SlotSet) Clone() SlotSet {
	c := make(SlotSet, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

func (s SlotSet) Get(category string) string {
	return s[category]
}

// Merge folds a classified value into the set.
//
// Constraints are cumulative: every call appends with ConstraintSeparator.
// Repeated identical values therefore append again; callers that need
// dedupe must handle it upstream.
//
// All other slots keep the longer value: a new value wins only if the slot
// is unpopulated or the new text is strictly longer.
func (s SlotSet) Merge(category, value string) {
	if category == CategoryNone || !IsValidCategory(category) {
		return
	}

	if category == CategoryConstraints {
		if prior, ok := s[category]; ok && prior != "" {
			s[category] = prior + ConstraintSeparator + value
		} else {
			s[category] = value
		}
		return
	}

	if prior, ok := s[category]; !ok || prior == "" || len(value) > len(prior) {
		s[category] = value
	}
}

// PopulatedCount returns the number of slots holding a non-empty value.
func (s SlotSet) PopulatedCount() int {
	count := 0
	for _, c := range Categories {
		if s[c] != "" {
			count++
		}
	}
	return count
}

// Has reports whether a slot holds a non-empty value.
func (s SlotSet) Has(category string) bool {
	return s[category] != ""
}
