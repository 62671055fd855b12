package document

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizblocks/internal/block"
	"github.com/abhisek/quizblocks/internal/render"
	"github.com/abhisek/quizblocks/internal/router"
	quizscreen "github.com/abhisek/quizblocks/internal/screens/quiz"
)

const doc = "# Planets\n\n```quiz\n" + `type: radio
content: "**Largest** planet?"
options:
  - content: Jupiter
    correct: true
  - content: Mars
` + "```\n\n```quiz\n```\n"

func newScreen(t *testing.T) *DocumentScreen {
	t.Helper()
	results := block.Process(block.Document{Path: "notes/planets.md", Source: []byte(doc)})
	return New("notes/planets.md", results, render.Plain{})
}

func TestDocumentScreen_ListsBlocks(t *testing.T) {
	s := newScreen(t)

	if s.Title() != "planets.md" {
		t.Errorf("Title = %q", s.Title())
	}
	if s.HeaderInfo() != "2 quizzes, 1 invalid" {
		t.Errorf("HeaderInfo = %q", s.HeaderInfo())
	}

	view := s.View(80, 24)
	for _, want := range []string{"1. Largest planet?", "radio · lines 3-10", "2. Error: Empty quiz block."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDocumentScreen_EnterOpensQuiz(t *testing.T) {
	s := newScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("pushed %T", push.Screen)
	}
	if push.Screen.Title() != "radio quiz" {
		t.Errorf("pushed screen title = %q", push.Screen.Title())
	}
}

func TestDocumentScreen_Empty(t *testing.T) {
	s := New("empty.md", nil, render.Plain{})
	if !strings.Contains(s.View(80, 24), "No quiz blocks") {
		t.Error("expected empty message")
	}
}

func openFirst(t *testing.T, s *DocumentScreen) *quizscreen.QuizScreen {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	return cmd().(router.PushScreenMsg).Screen.(*quizscreen.QuizScreen)
}

func TestDocumentScreen_KeepsQuizStateForSession(t *testing.T) {
	s := newScreen(t)

	q := openFirst(t, s)
	q.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	q.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})

	s.Resume()
	view := s.View(80, 24)
	if !strings.Contains(view, "radio · lines 3-10 · 1/1") {
		t.Errorf("expected the session score in the view:\n%s", view)
	}
	if s.HeaderInfo() != "2 quizzes, 1 invalid, 1 checked" {
		t.Errorf("HeaderInfo = %q", s.HeaderInfo())
	}

	if again := openFirst(t, s); again != q {
		t.Error("reopening a quiz should return the same screen")
	}
}
