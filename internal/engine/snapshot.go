package engine

import "github.com/abhisek/quizblocks/internal/quiz"

// Snapshot is a read-only view of a widget.
type Snapshot struct {
	Kind      quiz.Kind
	StableID  string
	GroupName string
	Content   string
	Phase     Phase

	// Rows is set for radio and checkbox widgets.
	Rows []RowSnapshot

	// Questions is set for choice widgets.
	Questions []QuestionSnapshot

	Actions Actions
}

// Actions describes the check and reset controls.
type Actions struct {
	CheckVisible bool
	CheckEnabled bool
	CheckLabel   string
	ResetVisible bool
}

// Feedback is revealed explanation text. Text may be empty, in which case
// only the mark is shown.
type Feedback struct {
	Text    string
	Correct bool
}

// Mark returns the feedback's correctness mark.
func (f Feedback) Mark() Mark {
	return MarkFor(f.Correct)
}

// RowSnapshot is one option row of a radio or checkbox widget.
type RowSnapshot struct {
	Index    int
	Value    string
	Content  string
	Selected bool
	State    RowState
	Feedback *Feedback
}

// Appearance is shorthand for State.Appearance().
func (r RowSnapshot) Appearance() Appearance {
	return r.State.Appearance()
}

// Choice is one entry of a question's dropdown.
type Choice struct {
	ID      string
	Content string
}

// QuestionSnapshot is one question of a choice widget.
type QuestionSnapshot struct {
	Index   int
	Content string

	// Selected is the chosen option id, empty until the user picks one.
	Selected string

	// Placeholder is true while the "..." entry is still offered.
	Placeholder bool

	// Choices is nil once the question has been graded; the control is
	// replaced by Answer.
	Choices []Choice

	Answer *Answer
}

// Answer is the static rendering that replaces a graded question's control.
type Answer struct {
	OptionID string

	// Content is the chosen option's content, or the raw id when the
	// option cannot be resolved.
	Content  string
	Resolved bool
	Correct  bool

	// Feedback is nil when the question has no feedback text.
	Feedback *Feedback
}

// Mark returns the answer's correctness mark.
func (a Answer) Mark() Mark {
	return MarkFor(a.Correct)
}

// Score counts what a checked snapshot got right. A radio quiz is one
// answer; a checkbox quiz scores every row whose selection matches its
// correctness; a choice quiz scores each question. Unchecked snapshots
// score zero.
func Score(s Snapshot) (correct, total int) {
	if s.Phase != PhaseChecked {
		return 0, 0
	}
	switch s.Kind {
	case quiz.KindChoice:
		for _, q := range s.Questions {
			if q.Answer != nil && q.Answer.Correct {
				correct++
			}
		}
		return correct, len(s.Questions)
	case quiz.KindRadio:
		for _, r := range s.Rows {
			if r.State == StateCorrectSelected {
				return 1, 1
			}
		}
		return 0, 1
	}
	for _, r := range s.Rows {
		if r.State == StateCorrectSelected || r.State == StateDisabledUnselected {
			correct++
		}
	}
	return correct, len(s.Rows)
}
