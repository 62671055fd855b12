// Package author drafts quiz blocks with an LLM. Every block it returns
// has been through quiz.Load and the configured validators.
package author

import (
	"context"

	"github.com/abhisek/quizblocks/internal/llm"
	"github.com/abhisek/quizblocks/internal/quiz"
)

// Generator produces quiz blocks.
type Generator interface {
	// Generate drafts one quiz for input.
	Generate(ctx context.Context, input Input) (*Result, error)
}

// Input describes the quiz to draft.
type Input struct {
	Kind  quiz.Kind
	Topic string

	// Options is the number of options to ask for. Zero uses the config
	// default.
	Options int

	// Questions is the number of questions of a choice quiz. Zero uses the
	// config default.
	Questions int

	// Avoid lists prompts of quizzes that already exist, for example the
	// other blocks of the target document.
	Avoid []string
}

// Result is an accepted quiz.
type Result struct {
	Quiz quiz.Quiz

	// Block is the quiz as a fenced Markdown block ending in a newline.
	Block string

	// Attempts counts model calls, including repairs.
	Attempts int

	// Usage sums token use over all attempts.
	Usage llm.Usage
}
