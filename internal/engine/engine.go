// Package engine holds the interaction state machines behind rendered
// quiz widgets. Widgets are plain values driven by selection, check and
// reset calls; adapters draw Snapshot() and forward user events back.
// A widget assumes a single writer and shares nothing with other widgets.
package engine

import (
	"github.com/abhisek/quizblocks/internal/quiz"
)

// CheckLabel is the caption of the check action.
const CheckLabel = "Check"

// Widget is the state machine of one rendered quiz.
type Widget interface {
	// Kind returns the variant of the underlying quiz.
	Kind() quiz.Kind

	// Phase returns the widget-level state.
	Phase() Phase

	// Check grades the current selection. It is a no-op when the widget
	// is already checked or the selection is incomplete.
	Check() CheckResult

	// Reset restores the unanswered state.
	Reset()

	// Snapshot returns a copy of everything an adapter draws.
	Snapshot() Snapshot
}

// CheckResult reports the outcome of a Check call.
type CheckResult struct {
	// Applied is true when the widget moved to PhaseChecked.
	Applied bool

	// Notice is a non-blocking message for the user, e.g. "2 questions left.".
	Notice string
}

// New builds the widget matching the quiz variant.
func New(q quiz.Quiz, stableID string) Widget {
	if q.Kind == quiz.KindChoice {
		return NewChoice(q, stableID)
	}
	return NewOptions(q, stableID)
}
