package author

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizblocks/internal/quiz"
)

const maxContentLen = 1000

// StructuralValidator checks the shape of a draft against the request:
// variant, option and question counts, and non-blank text.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q quiz.Quiz, input Input) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if q.Kind != input.Kind {
		return fail("type is %q, want %q", q.Kind, input.Kind)
	}
	if strings.TrimSpace(q.Content) == "" {
		return fail("content is empty")
	}
	if len(q.Content) > maxContentLen {
		return fail("content exceeds %d characters", maxContentLen)
	}
	if input.Options > 0 && len(q.Options) != input.Options {
		return fail("got %d options, want %d", len(q.Options), input.Options)
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o.Content) == "" {
			return fail("options[%d].content is empty", i)
		}
	}

	if q.Kind != quiz.KindChoice {
		return nil
	}
	if input.Questions > 0 && len(q.Questions) != input.Questions {
		return fail("got %d questions, want %d", len(q.Questions), input.Questions)
	}
	for i, cq := range q.Questions {
		if strings.TrimSpace(cq.Content) == "" {
			return fail("questions[%d].content is empty", i)
		}
	}
	return nil
}
