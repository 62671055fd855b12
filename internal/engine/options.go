package engine

import (
	"github.com/abhisek/quizblocks/internal/quiz"
)

// OptionWidget drives radio and checkbox quizzes. Rows are addressed by
// their index in Quiz.Options so blank or repeated option ids never
// collide.
type OptionWidget struct {
	quiz     quiz.Quiz
	stableID string
	phase    Phase
	selected []bool
	graded   []RowState
	feedback []*Feedback
}

// NewOptions builds an unanswered radio or checkbox widget.
func NewOptions(q quiz.Quiz, stableID string) *OptionWidget {
	w := &OptionWidget{quiz: q, stableID: stableID}
	w.Reset()
	return w
}

func (w *OptionWidget) Kind() quiz.Kind { return w.quiz.Kind }

func (w *OptionWidget) Phase() Phase { return w.phase }

// Len returns the number of rows.
func (w *OptionWidget) Len() int { return len(w.quiz.Options) }

// Selected reports whether a row is currently selected.
func (w *OptionWidget) Selected(row int) bool {
	if row < 0 || row >= len(w.selected) {
		return false
	}
	return w.selected[row]
}

// Select activates a row: radio rows become the only selection, checkbox
// rows toggle.
func (w *OptionWidget) Select(row int) {
	if w.quiz.Kind == quiz.KindCheckbox {
		w.SetSelected(row, !w.Selected(row))
		return
	}
	w.SetSelected(row, true)
}

// SetSelected sets a row's selection explicitly. Selecting a radio row
// clears every other row.
func (w *OptionWidget) SetSelected(row int, on bool) {
	if w.phase != PhaseUnanswered || row < 0 || row >= len(w.selected) {
		return
	}
	if on && w.quiz.Kind == quiz.KindRadio {
		for i := range w.selected {
			w.selected[i] = false
		}
	}
	w.selected[row] = on
}

func (w *OptionWidget) anySelected() bool {
	for _, s := range w.selected {
		if s {
			return true
		}
	}
	return false
}

// Check grades the selection. Nothing happens when no row is selected.
func (w *OptionWidget) Check() CheckResult {
	if w.phase != PhaseUnanswered || !w.anySelected() {
		return CheckResult{}
	}

	if w.quiz.Kind == quiz.KindRadio {
		w.gradeRadio()
	} else {
		w.gradeCheckbox()
	}
	w.phase = PhaseChecked
	return CheckResult{Applied: true}
}

func (w *OptionWidget) gradeRadio() {
	selectedRow, firstCorrect := -1, -1
	for i, opt := range w.quiz.Options {
		w.graded[i] = Grade(opt.Correct, w.selected[i])
		if w.selected[i] && selectedRow < 0 {
			selectedRow = i
		}
		if opt.Correct && firstCorrect < 0 {
			firstCorrect = i
		}
	}

	w.reveal(selectedRow, w.quiz.Options[selectedRow].Correct)
	if firstCorrect >= 0 && firstCorrect != selectedRow {
		w.reveal(firstCorrect, true)
	}
}

func (w *OptionWidget) gradeCheckbox() {
	for i, opt := range w.quiz.Options {
		w.graded[i] = Grade(opt.Correct, w.selected[i])
		if opt.Correct || w.selected[i] {
			w.reveal(i, opt.Correct)
		}
	}
}

func (w *OptionWidget) reveal(row int, correct bool) {
	fb := &Feedback{Correct: correct}
	if text := w.quiz.Options[row].Feedback; quiz.HasFeedback(text) {
		fb.Text = *text
	}
	w.feedback[row] = fb
}

// Reset clears selection, grading and feedback.
func (w *OptionWidget) Reset() {
	n := len(w.quiz.Options)
	w.phase = PhaseUnanswered
	w.selected = make([]bool, n)
	w.graded = make([]RowState, n)
	w.feedback = make([]*Feedback, n)
}

func (w *OptionWidget) rowState(row int) RowState {
	if w.phase == PhaseChecked {
		return w.graded[row]
	}
	return pendingState(w.selected[row])
}

func (w *OptionWidget) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:      w.quiz.Kind,
		StableID:  w.stableID,
		GroupName: quiz.GroupName(w.stableID),
		Content:   w.quiz.Content,
		Phase:     w.phase,
		Rows:      make([]RowSnapshot, len(w.quiz.Options)),
		Actions: Actions{
			CheckVisible: w.phase == PhaseUnanswered,
			CheckEnabled: w.phase == PhaseUnanswered,
			CheckLabel:   CheckLabel,
			ResetVisible: w.phase == PhaseChecked,
		},
	}

	for i, opt := range w.quiz.Options {
		row := RowSnapshot{
			Index:    i,
			Value:    opt.Key(),
			Content:  opt.Content,
			Selected: w.selected[i],
			State:    w.rowState(i),
		}
		if fb := w.feedback[i]; fb != nil {
			cp := *fb
			row.Feedback = &cp
		}
		snap.Rows[i] = row
	}
	return snap
}
