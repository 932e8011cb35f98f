package extract

import (
	"context"
	"log"
	"strings"
	"time"

	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"
)

// Result is the classifier's verdict for one user turn: at most one
// (category, value, confidence) triple. Value must be the user's own
// words, never a paraphrase.
type Result struct {
	Category   string  `json:"category"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Classifier turns one free-text user turn into a Result. Implementations
// may fail (timeout, transport error, malformed output); the Extractor
// absorbs every failure.
type Classifier interface {
	Classify(ctx context.Context, userText string, collected slots.SlotSet) (*Result, error)
}

const (
	// Messages shorter than this carry no extractable information.
	minMessageLength = 5

	// Merge only applies above this classifier confidence.
	minClassifierConfidence = 0.5

	// DefaultTimeout bounds the classification call. One shot: on expiry
	// the keyword fallback runs, there is no retry.
	DefaultTimeout = 10 * time.Second
)

// Extractor updates a SlotSet from free-text user turns. The primary path
// goes through the classifier; any failure degrades to keyword matching.
// Extract never returns an error and never panics.
type Extractor struct {
	classifier Classifier
	timeout    time.Duration
	logger     *log.Logger
}

func NewExtractor(classifier Classifier, logger *log.Logger) *Extractor {
	return &Extractor{
		classifier: classifier,
		timeout:    DefaultTimeout,
		logger:     logger,
	}
}

// WithTimeout overrides the classification deadline. Zero or negative
// values are ignored.
func (e *Extractor) WithTimeout(d time.Duration) *Extractor {
	if d > 0 {
		e.timeout = d
	}
	return e
}

// Extract returns a new SlotSet with any information found in userText
// merged in. The input set is never mutated.
func (e *Extractor) Extract(ctx context.Context, userText string, current phase.Phase, collected slots.SlotSet) slots.SlotSet {
	updated := collected.Clone()

	if len(strings.TrimSpace(userText)) < minMessageLength {
		return updated
	}

	if e.classifier == nil {
		return Fallback(userText, updated)
	}

	classifyCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.classifier.Classify(classifyCtx, userText, collected)
	if err != nil {
		e.logger.Printf("[WARN] Extraction failed (phase=%s): %v, using keyword fallback", current, err)
		return Fallback(userText, updated)
	}
	if result == nil || !validResult(result) {
		e.logger.Printf("[WARN] Extraction returned malformed result (phase=%s), using keyword fallback", current)
		return Fallback(userText, updated)
	}

	if result.Confidence > minClassifierConfidence && slots.IsValidCategory(result.Category) {
		updated.Merge(result.Category, result.Value)
	}

	e.logger.Printf("[EXTRACT] category=%s confidence=%.2f value_length=%d",
		result.Category, result.Confidence, len(result.Value))

	return updated
}

func validResult(r *Result) bool {
	if r.Category != slots.CategoryNone && !slots.IsValidCategory(r.Category) {
		return false
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return false
	}
	return true
}
