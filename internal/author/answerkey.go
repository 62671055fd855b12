package author

import (
	"github.com/abhisek/quizblocks/internal/quiz"
)

// AnswerKeyValidator checks that a draft can be answered: radio quizzes
// have exactly one correct option, checkbox quizzes at least one, and
// every choice question names an option.
type AnswerKeyValidator struct{}

func (v *AnswerKeyValidator) Name() string { return "answer-key" }

func (v *AnswerKeyValidator) Validate(q quiz.Quiz, _ Input) *ValidationError {
	correct := 0
	for _, o := range q.Options {
		if o.Correct {
			correct++
		}
	}

	switch q.Kind {
	case quiz.KindRadio:
		if correct != 1 {
			return &ValidationError{Validator: v.Name(), Message: "a radio quiz needs exactly one correct option"}
		}
	case quiz.KindCheckbox:
		if correct == 0 {
			return &ValidationError{Validator: v.Name(), Message: "a checkbox quiz needs at least one correct option"}
		}
	case quiz.KindChoice:
		for _, cq := range q.Questions {
			if cq.CorrectOption == nil || *cq.CorrectOption == "" {
				return &ValidationError{Validator: v.Name(), Message: "every question needs a correct_option"}
			}
		}
	}
	return nil
}
