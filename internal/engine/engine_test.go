package engine

import (
	"testing"

	"github.com/abhisek/quizblocks/internal/quiz"
)

func strp(s string) *string { return &s }

func radioQuiz() quiz.Quiz {
	return quiz.Quiz{
		Kind:    quiz.KindRadio,
		Content: "Pick one",
		Options: []quiz.Option{
			{ID: "A", Content: "A", Feedback: strp("not this one")},
			{ID: "B", Content: "B", Correct: true, Feedback: strp("right")},
		},
	}
}

func checkboxQuiz() quiz.Quiz {
	return quiz.Quiz{
		Kind: quiz.KindCheckbox,
		Options: []quiz.Option{
			{ID: "A", Content: "A", Correct: true},
			{ID: "B", Content: "B", Correct: true, Feedback: strp("also right")},
			{ID: "C", Content: "C"},
		},
	}
}

func choiceQuiz() quiz.Quiz {
	return quiz.Quiz{
		Kind: quiz.KindChoice,
		Options: []quiz.Option{
			{ID: "o1", Content: "X"},
			{ID: "o2", Content: "Y"},
		},
		Questions: []quiz.ChoiceQuestion{
			{Content: "Q1", CorrectOption: strp("o1"), Feedback: strp("X is right")},
		},
	}
}

func rowStates(s Snapshot) []RowState {
	out := make([]RowState, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.State
	}
	return out
}

func assertStates(t *testing.T, got Snapshot, want ...RowState) {
	t.Helper()
	states := rowStates(got)
	if len(states) != len(want) {
		t.Fatalf("got %d rows, want %d", len(states), len(want))
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("row %d: state = %s, want %s", i, states[i], want[i])
		}
	}
}

func TestNew_PicksWidgetByKind(t *testing.T) {
	if _, ok := New(radioQuiz(), "r").(*OptionWidget); !ok {
		t.Error("radio quiz should build an OptionWidget")
	}
	if _, ok := New(checkboxQuiz(), "c").(*OptionWidget); !ok {
		t.Error("checkbox quiz should build an OptionWidget")
	}
	if _, ok := New(choiceQuiz(), "x").(*ChoiceWidget); !ok {
		t.Error("choice quiz should build a ChoiceWidget")
	}
}

func TestRadio_WrongSelection(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	w.Select(0)
	if res := w.Check(); !res.Applied {
		t.Fatal("check with a selection should apply")
	}

	snap := w.Snapshot()
	assertStates(t, snap, StateWrongSelected, StateCorrectNotSelected)

	if fb := snap.Rows[0].Feedback; fb == nil || fb.Correct || fb.Text != "not this one" {
		t.Errorf("selected row feedback = %+v", fb)
	}
	if fb := snap.Rows[1].Feedback; fb == nil || !fb.Correct || fb.Text != "right" {
		t.Errorf("first correct row feedback = %+v", fb)
	}
}

func TestRadio_CorrectSelection(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	w.Select(1)
	w.Check()

	snap := w.Snapshot()
	assertStates(t, snap, StateDisabledUnselected, StateCorrectSelected)
	if snap.Rows[0].Feedback != nil {
		t.Error("unselected wrong row should not reveal feedback")
	}
}

func TestRadio_SelectionIsExclusive(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	w.Select(0)
	w.Select(1)

	assertStates(t, w.Snapshot(), StateUnanswered, StateUnansweredSelected)
}

func TestRadio_ZeroCorrect(t *testing.T) {
	q := quiz.Quiz{
		Kind: quiz.KindRadio,
		Options: []quiz.Option{
			{ID: "A", Content: "A"},
			{ID: "B", Content: "B"},
		},
	}
	w := NewOptions(q, "q")
	w.Select(0)
	w.Check()

	assertStates(t, w.Snapshot(), StateWrongSelected, StateDisabledUnselected)
}

func TestRadio_ManyCorrect(t *testing.T) {
	q := quiz.Quiz{
		Kind: quiz.KindRadio,
		Options: []quiz.Option{
			{ID: "A", Content: "A", Correct: true},
			{ID: "B", Content: "B"},
			{ID: "C", Content: "C", Correct: true},
		},
	}
	w := NewOptions(q, "q")
	w.Select(2)
	w.Check()

	snap := w.Snapshot()
	assertStates(t, snap, StateCorrectNotSelected, StateDisabledUnselected, StateCorrectSelected)
	if snap.Rows[0].Feedback == nil || !snap.Rows[0].Feedback.Correct {
		t.Error("first correct row should reveal feedback")
	}
}

func TestCheckbox_Grading(t *testing.T) {
	w := NewOptions(checkboxQuiz(), "q")
	w.Select(0)
	w.Select(2)
	w.Check()

	snap := w.Snapshot()
	assertStates(t, snap, StateCorrectSelected, StateCorrectNotSelected, StateWrongSelected)

	for i, row := range snap.Rows {
		if row.Feedback == nil {
			t.Errorf("row %d: feedback should be revealed for selected or correct rows", i)
		}
	}
	if snap.Rows[0].Feedback.Text != "" {
		t.Errorf("row without feedback text should reveal an empty text, got %q", snap.Rows[0].Feedback.Text)
	}
	if snap.Rows[1].Feedback.Text != "also right" {
		t.Errorf("missed correct row feedback = %q", snap.Rows[1].Feedback.Text)
	}
}

func TestCheckbox_SelectToggles(t *testing.T) {
	w := NewOptions(checkboxQuiz(), "q")
	w.Select(1)
	w.Select(1)
	if w.Selected(1) {
		t.Error("second Select should clear a checkbox row")
	}
	w.SetSelected(0, true)
	w.SetSelected(2, true)
	assertStates(t, w.Snapshot(), StateUnansweredSelected, StateUnanswered, StateUnansweredSelected)
}

func TestOptions_CheckWithoutSelectionIsNoop(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	if res := w.Check(); res.Applied || res.Notice != "" {
		t.Errorf("Check() = %+v, want zero result", res)
	}
	if w.Phase() != PhaseUnanswered {
		t.Errorf("phase = %s, want unanswered", w.Phase())
	}
}

func TestOptions_CheckIsGated(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	w.Select(0)
	w.Check()
	if res := w.Check(); res.Applied {
		t.Error("second Check should be rejected while checked")
	}

	w.Select(1)
	if w.Selected(1) {
		t.Error("selection should be ignored while checked")
	}
}

func TestOptions_OutOfRangeRowsIgnored(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	w.Select(-1)
	w.Select(5)
	w.SetSelected(2, true)
	assertStates(t, w.Snapshot(), StateUnanswered, StateUnanswered)
}

func TestOptions_Reset(t *testing.T) {
	for _, q := range []quiz.Quiz{radioQuiz(), checkboxQuiz()} {
		w := NewOptions(q, "q")
		w.Select(0)
		w.Check()
		w.Reset()

		snap := w.Snapshot()
		if snap.Phase != PhaseUnanswered {
			t.Errorf("%s: phase after reset = %s", q.Kind, snap.Phase)
		}
		for i, row := range snap.Rows {
			if row.State != StateUnanswered || row.Selected || row.Feedback != nil {
				t.Errorf("%s row %d after reset: %+v", q.Kind, i, row)
			}
			if row.Appearance().Disabled {
				t.Errorf("%s row %d should be enabled after reset", q.Kind, i)
			}
		}
		if !snap.Actions.CheckVisible || snap.Actions.ResetVisible {
			t.Errorf("%s: actions after reset = %+v", q.Kind, snap.Actions)
		}
	}
}

func TestOptions_ActionsFollowPhase(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	before := w.Snapshot().Actions
	if !before.CheckVisible || before.ResetVisible || before.CheckLabel != "Check" {
		t.Errorf("unanswered actions = %+v", before)
	}

	w.Select(1)
	w.Check()
	after := w.Snapshot().Actions
	if after.CheckVisible || !after.ResetVisible {
		t.Errorf("checked actions = %+v", after)
	}
}

func TestOptions_SnapshotIsACopy(t *testing.T) {
	w := NewOptions(radioQuiz(), "q")
	w.Select(0)
	w.Check()

	snap := w.Snapshot()
	snap.Rows[0].Feedback.Text = "mutated"
	snap.Rows[1].State = StateUnanswered

	again := w.Snapshot()
	if again.Rows[0].Feedback.Text != "not this one" || again.Rows[1].State != StateCorrectNotSelected {
		t.Error("mutating a snapshot should not leak into the widget")
	}
}

func TestOptions_GroupNameFromStableID(t *testing.T) {
	snap := NewOptions(radioQuiz(), "notes.md|3|9|radio").Snapshot()
	if snap.GroupName != quiz.GroupName("notes.md|3|9|radio") {
		t.Errorf("group name = %q", snap.GroupName)
	}
}

func TestScore(t *testing.T) {
	radio := NewOptions(radioQuiz(), "q")
	if c, n := Score(radio.Snapshot()); c != 0 || n != 0 {
		t.Fatalf("unchecked score = %d/%d, want 0/0", c, n)
	}
	radio.Select(1)
	radio.Check()
	if c, n := Score(radio.Snapshot()); c != 1 || n != 1 {
		t.Errorf("radio score = %d/%d, want 1/1", c, n)
	}

	box := NewOptions(checkboxQuiz(), "q")
	box.Select(0)
	box.Select(2)
	box.Check()
	// A right, B missed, C wrongly selected.
	if c, n := Score(box.Snapshot()); c != 1 || n != 3 {
		t.Errorf("checkbox score = %d/%d, want 1/3", c, n)
	}

	choice := NewChoice(choiceQuiz(), "q")
	choice.Choose(0, "o1")
	choice.Check()
	if c, n := Score(choice.Snapshot()); c != 1 || n != 1 {
		t.Errorf("choice score = %d/%d, want 1/1", c, n)
	}
}
