package extract

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/slots"

	"github.com/stretchr/testify/assert"
)

type stubClassifier struct {
	result *Result
	err    error
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, userText string, collected slots.SlotSet) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestExtractClassifierSuccess(t *testing.T) {
	stub := &stubClassifier{result: &Result{
		Category:   slots.CategoryObjective,
		Value:      "write a product description",
		Confidence: 0.9,
	}}
	e := NewExtractor(stub, discardLogger())

	got := e.Extract(context.Background(), "I want to write a product description", phase.Interview, slots.New())

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "write a product description", got.Get(slots.CategoryObjective))
}

func TestExtractLowConfidenceNotMerged(t *testing.T) {
	stub := &stubClassifier{result: &Result{
		Category:   slots.CategoryObjective,
		Value:      "maybe a summary",
		Confidence: 0.4,
	}}
	e := NewExtractor(stub, discardLogger())

	// A valid but uncertain verdict is dropped outright: no merge and no
	// keyword fallback either.
	got := e.Extract(context.Background(), "something vague here", phase.Interview, slots.New())

	assert.Empty(t, got)
}

func TestExtractClassifierErrorFallsBack(t *testing.T) {
	stub := &stubClassifier{err: errors.New("upstream timeout")}
	e := NewExtractor(stub, discardLogger())

	got := e.Extract(context.Background(), "create a summary for students", phase.DataCollection, slots.New())

	assert.True(t, got.Has(slots.CategoryObjective))
	assert.True(t, got.Has(slots.CategoryContext))
}

func TestExtractMalformedResultFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
	}{
		{"nil result", nil},
		{"confidence above one", &Result{Category: slots.CategoryObjective, Value: "x", Confidence: 2.0}},
		{"negative confidence", &Result{Category: slots.CategoryObjective, Value: "x", Confidence: -0.1}},
		{"unknown category", &Result{Category: "mood", Value: "x", Confidence: 0.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&stubClassifier{result: tt.result}, discardLogger())

			got := e.Extract(context.Background(), "create a summary", phase.Interview, slots.New())

			assert.Equal(t, "create a summary", got.Get(slots.CategoryObjective))
		})
	}
}

func TestExtractShortMessageSkipped(t *testing.T) {
	stub := &stubClassifier{result: &Result{Category: slots.CategoryObjective, Value: "x", Confidence: 0.9}}
	e := NewExtractor(stub, discardLogger())

	got := e.Extract(context.Background(), "  ok  ", phase.Interview, slots.New())

	assert.Empty(t, got)
	assert.Equal(t, 0, stub.calls)
}

func TestExtractNilClassifierUsesFallback(t *testing.T) {
	e := NewExtractor(nil, discardLogger())

	got := e.Extract(context.Background(), "make it a bullet list", phase.Interview, slots.New())

	assert.True(t, got.Has(slots.CategoryObjective))
	assert.True(t, got.Has(slots.CategoryOutputFormat))
}

func TestExtractDoesNotMutateInput(t *testing.T) {
	stub := &stubClassifier{result: &Result{
		Category:   slots.CategoryContext,
		Value:      "for marketing teams",
		Confidence: 0.8,
	}}
	e := NewExtractor(stub, discardLogger())

	original := slots.New()
	original.Merge(slots.CategoryObjective, "write a newsletter")

	got := e.Extract(context.Background(), "it is for marketing teams", phase.DataCollection, original)

	assert.False(t, original.Has(slots.CategoryContext))
	assert.True(t, got.Has(slots.CategoryContext))
	assert.Equal(t, "write a newsletter", got.Get(slots.CategoryObjective))
}

func TestFallbackPopulatesMultipleSlots(t *testing.T) {
	got := Fallback("Create a formal list for students", slots.New())

	assert.Equal(t, "Create a formal list for students", got.Get(slots.CategoryObjective))
	assert.Equal(t, "Create a formal list for students", got.Get(slots.CategoryContext))
	assert.Equal(t, "Create a formal list for students", got.Get(slots.CategoryConstraints))
	assert.Equal(t, "Create a formal list for students", got.Get(slots.CategoryOutputFormat))
	assert.False(t, got.Has(slots.CategoryRole))
}

func TestFallbackFirstMatchWins(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryObjective, "write a poem")

	got := Fallback("I also want to build a landing page", s)

	// Non-constraint slots keep their first value.
	assert.Equal(t, "write a poem", got.Get(slots.CategoryObjective))
}

func TestFallbackConstraintsAppend(t *testing.T) {
	s := slots.New()
	s.Merge(slots.CategoryConstraints, "max 100 words")

	got := Fallback("keep it formal", s)

	assert.Equal(t, "max 100 words | keep it formal", got.Get(slots.CategoryConstraints))
}
