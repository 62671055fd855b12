package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizblocks/internal/block"
	"github.com/abhisek/quizblocks/internal/engine"
	"github.com/abhisek/quizblocks/internal/render"
	"github.com/abhisek/quizblocks/internal/router"
)

const radioDoc = "```quiz\n" + `type: radio
content: Largest planet?
options:
  - id: mars
    content: Mars
    feedback: Too small.
  - id: jupiter
    content: Jupiter
    correct: true
` + "```\n"

const choiceDoc = "```quiz\n" + `type: choice
content: Match the structure
options:
  - id: stack
    content: Stack
  - id: queue
    content: Queue
questions:
  - content: Undo history
    correct_option: stack
  - content: Print jobs
    correct_option: queue
` + "```\n"

func load(t *testing.T, doc string) block.Result {
	t.Helper()
	results := block.Process(block.Document{Path: "notes/test.md", Source: []byte(doc)})
	if len(results) != 1 {
		t.Fatalf("expected 1 block, got %d", len(results))
	}
	return results[0]
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(t *testing.T, s *QuizScreen, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func TestQuizScreen_RadioFlow(t *testing.T) {
	s := New(load(t, radioDoc), render.Plain{})

	if s.Title() != "radio quiz" {
		t.Errorf("Title = %q", s.Title())
	}
	if _, _, ok := s.Checked(); ok {
		t.Fatal("fresh quiz should not be checked")
	}

	// Select Mars, then check.
	press(t, s, specialKey(tea.KeySpace))
	press(t, s, keyPress('c'))
	if correct, total, ok := s.Checked(); !ok || correct != 0 || total != 1 {
		t.Errorf("Checked() = %d, %d, %v", correct, total, ok)
	}

	states := []engine.RowState{s.view.Rows[0].State, s.view.Rows[1].State}
	if states[0] != engine.StateWrongSelected || states[1] != engine.StateCorrectNotSelected {
		t.Errorf("states = %v", states)
	}
	if s.HeaderInfo() != "0/1 correct" {
		t.Errorf("HeaderInfo = %q", s.HeaderInfo())
	}
	view := s.View(80, 30)
	if !strings.Contains(view, "Too small.") {
		t.Errorf("feedback missing from view:\n%s", view)
	}

	// Selection is frozen once checked.
	press(t, s, specialKey(tea.KeyDown), specialKey(tea.KeySpace))
	if !s.view.Rows[0].Selected || s.view.Rows[1].Selected {
		t.Error("checked widget must ignore selection")
	}

	press(t, s, keyPress('r'))
	if s.view.Phase != engine.PhaseUnanswered || s.view.Rows[0].Selected {
		t.Error("reset should restore the unanswered state")
	}
}

func TestQuizScreen_CheckWithoutSelection(t *testing.T) {
	s := New(load(t, radioDoc), render.Plain{})

	press(t, s, keyPress('c'))
	if s.view.Phase != engine.PhaseUnanswered {
		t.Error("check without selection must be a no-op")
	}
}

func TestQuizScreen_ChoiceFlow(t *testing.T) {
	s := New(load(t, choiceDoc), render.Plain{})

	// Answer only the first question.
	press(t, s, specialKey(tea.KeyRight))
	press(t, s, keyPress('c'))
	if s.notice != "1 questions left." {
		t.Errorf("notice = %q", s.notice)
	}
	if _, _, ok := s.Checked(); ok {
		t.Fatal("gated check must not grade the quiz")
	}

	// Second question: left from the placeholder picks the last option.
	press(t, s, specialKey(tea.KeyDown), specialKey(tea.KeyLeft))
	if s.view.Questions[1].Selected != "queue" {
		t.Fatalf("question 2 selected %q", s.view.Questions[1].Selected)
	}

	press(t, s, keyPress('c'))
	if correct, total, ok := s.Checked(); !ok || correct != 2 || total != 2 {
		t.Errorf("Checked() = %d, %d, %v", correct, total, ok)
	}
	if s.view.Questions[0].Answer == nil || !s.view.Questions[0].Answer.Correct {
		t.Error("question 1 should be graded correct")
	}
}

func TestQuizScreen_Diagnostic(t *testing.T) {
	s := New(load(t, "```quiz\n```\n"), render.Plain{})

	if s.Title() != "Invalid quiz block" {
		t.Errorf("Title = %q", s.Title())
	}
	if view := s.View(80, 24); !strings.Contains(view, "Error: Empty quiz block.") {
		t.Errorf("diagnostic missing:\n%s", view)
	}
	press(t, s, keyPress('c'))
	if _, _, ok := s.Checked(); ok {
		t.Error("diagnostic screen should ignore quiz keys")
	}

	cmd := press(t, s, specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc should pop the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestCycle(t *testing.T) {
	choices := []render.ChoiceLabel{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	tests := []struct {
		current string
		step    int
		want    string
	}{
		{"", 1, "a"},
		{"", -1, "c"},
		{"a", 1, "b"},
		{"c", 1, "a"},
		{"a", -1, "c"},
	}
	for _, tt := range tests {
		if got, _ := cycle(choices, tt.current, tt.step); got != tt.want {
			t.Errorf("cycle(%q, %d) = %q, want %q", tt.current, tt.step, got, tt.want)
		}
	}
	if _, ok := cycle(nil, "", 1); ok {
		t.Error("no choices should not cycle")
	}
}
