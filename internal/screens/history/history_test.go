package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizblocks/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func loaded(t *testing.T, s *HistoryScreen) {
	t.Helper()
	msg := s.Init()()
	s.Update(msg)
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(openRepo(t))
	if !strings.Contains(s.View(80, 24), "Loading") {
		t.Error("expected loading message before data arrives")
	}
	loaded(t, s)
	if !strings.Contains(s.View(80, 24), "No LLM requests yet") {
		t.Error("expected empty message")
	}
	if s.HeaderInfo() != "" {
		t.Errorf("HeaderInfo = %q", s.HeaderInfo())
	}
}

func TestHistoryScreen_ListsEventsNewestFirst(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	for _, e := range []store.LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "quiz-authoring", InputTokens: 120, OutputTokens: 80, Success: true,
			ResponseBody: `{"type":"radio","content":"Largest planet?"}`},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "quiz-repair", InputTokens: 200, OutputTokens: 0,
			ErrorMessage: "rate limited"},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	s := New(repo)
	loaded(t, s)

	view := s.View(120, 24)
	first := strings.Index(view, "quiz-repair")
	second := strings.Index(view, "quiz-authoring")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected newest request first:\n%s", view)
	}
	if s.HeaderInfo() != "2 requests, 400 tokens" {
		t.Errorf("HeaderInfo = %q", s.HeaderInfo())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 24), "rate limited") {
		t.Error("enter should expand the selected request")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 24), "Largest planet?") {
		t.Error("expanded request should preview the response")
	}
}

func TestHistoryScreen_Reload(t *testing.T) {
	repo := openRepo(t)
	s := New(repo)
	loaded(t, s)

	if err := repo.AppendLLMRequest(context.Background(), store.LLMRequestEventData{Purpose: "quiz-authoring", Model: "m", Success: true}); err != nil {
		t.Fatal(err)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("r should reload")
	}
	s.Update(cmd())
	if len(s.events) != 1 {
		t.Errorf("expected 1 event after reload, got %d", len(s.events))
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("gpt-4o", 28); got != "gpt-4o" {
		t.Errorf("shorten = %q", got)
	}
	if got := shorten("google/gemini-2.0-flash-exp", 10); got != "google/ge…" {
		t.Errorf("shorten = %q", got)
	}
}
