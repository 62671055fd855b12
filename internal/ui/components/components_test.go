package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizblocks/internal/engine"
	"github.com/abhisek/quizblocks/internal/quiz"
	"github.com/abhisek/quizblocks/internal/render"
)

func TestControlGlyphs(t *testing.T) {
	tests := []struct {
		kind  quiz.Kind
		state engine.RowState
		want  string
	}{
		{quiz.KindRadio, engine.StateUnanswered, "( )"},
		{quiz.KindRadio, engine.StateUnansweredSelected, "(•)"},
		{quiz.KindCheckbox, engine.StateUnansweredSelected, "[✓]"},
		{quiz.KindCheckbox, engine.StateCorrectNotSelected, "⟨−⟩"},
		{quiz.KindCheckbox, engine.StateWrongSelected, "[✗]"},
		{quiz.KindRadio, engine.StateDisabledUnselected, "( )"},
	}
	for _, tt := range tests {
		got := Control(tt.kind, tt.state.Appearance())
		if !strings.Contains(got, tt.want) {
			t.Errorf("Control(%s, %s) = %q, want %q", tt.kind, tt.state, got, tt.want)
		}
	}
}

func TestRenderRow_Feedback(t *testing.T) {
	row := render.RowView{
		RowSnapshot: engine.RowSnapshot{
			State:    engine.StateWrongSelected,
			Selected: true,
			Feedback: &engine.Feedback{Text: "Too hot.", Correct: false},
		},
		Text:         render.Fragment{Text: "Venus", Plain: "Venus"},
		FeedbackText: render.Fragment{Text: "Too hot.", Plain: "Too hot."},
	}

	out := RenderRow(quiz.KindRadio, row, true, 80)
	if strings.Contains(out, "▸") {
		t.Error("disabled rows should not show the cursor")
	}
	for _, want := range []string{"Venus", "✗", "Too hot."} {
		if !strings.Contains(out, want) {
			t.Errorf("row missing %q:\n%s", want, out)
		}
	}
}

func TestRenderQuestion(t *testing.T) {
	open := render.QuestionView{
		QuestionSnapshot: engine.QuestionSnapshot{Placeholder: true},
		Text:             render.Fragment{Text: "Undo history"},
		Choices:          []render.ChoiceLabel{{ID: "stack", Label: "Stack"}},
	}
	if out := RenderQuestion(open, true, 80); !strings.Contains(out, engine.Placeholder) || !strings.Contains(out, "▸") {
		t.Errorf("open question:\n%s", out)
	}

	open.Selected = "stack"
	if out := RenderQuestion(open, false, 80); !strings.Contains(out, "Stack") {
		t.Errorf("selected label missing:\n%s", out)
	}

	graded := render.QuestionView{
		QuestionSnapshot: engine.QuestionSnapshot{
			Answer: &engine.Answer{OptionID: "queue", Resolved: true, Correct: false},
		},
		Text:       render.Fragment{Text: "Undo history"},
		AnswerText: render.Fragment{Text: "Queue"},
	}
	out := RenderQuestion(graded, true, 80)
	if !strings.Contains(out, "✗") || !strings.Contains(out, "Queue") {
		t.Errorf("graded question:\n%s", out)
	}
	if strings.Contains(out, "▸") {
		t.Error("graded questions should not show the cursor")
	}
}

func TestMenuNavigation(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "one", Action: func() tea.Cmd { fired = "one"; return nil }},
		{Label: "two", Action: func() tea.Cmd { fired = "two"; return nil }},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "two" {
		t.Errorf("fired = %q", fired)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if m.Selected != 0 {
		t.Errorf("home should select the first item")
	}
}

func TestProgressPercent(t *testing.T) {
	if p := NewProgressBar("", 1, 4, 40).Percent(); p != 0.25 {
		t.Errorf("Percent = %v", p)
	}
	if p := NewProgressBar("", 3, 0, 40).Percent(); p != 0 {
		t.Errorf("zero total should be empty, got %v", p)
	}
	if !strings.Contains(NewProgressBar("Answered", 2, 3, 40).View(), "2/3") {
		t.Error("progress view should show the count")
	}
}
