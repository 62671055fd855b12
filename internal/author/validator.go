package author

import (
	"fmt"

	"github.com/abhisek/quizblocks/internal/quiz"
)

// Validator checks a draft that quiz.Load already accepted.
// Implementations are stateless.
type Validator interface {
	// Name is a short identifier used in error messages.
	Name() string

	// Validate returns nil when q is acceptable for input.
	Validate(q quiz.Quiz, input Input) *ValidationError
}

// ValidationError describes why a draft was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
