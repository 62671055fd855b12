package author

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizblocks/internal/quiz"
)

// draftOutput mirrors quiz.JSONSchema.
type draftOutput struct {
	Type      string          `json:"type"`
	Content   string          `json:"content"`
	Options   []draftOption   `json:"options"`
	Questions []draftQuestion `json:"questions"`
}

type draftOption struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

type draftQuestion struct {
	Content       string `json:"content"`
	CorrectOption string `json:"correct_option"`
	Feedback      string `json:"feedback"`
}

// decodeDraft turns the model's JSON into a fenced block and loads it back
// the way a document would.
func decodeDraft(raw json.RawMessage) (quiz.Quiz, string, error) {
	var out draftOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return quiz.Quiz{}, "", fmt.Errorf("decode quiz JSON: %w", err)
	}

	draft := quiz.Quiz{Kind: quiz.Kind(out.Type), Content: out.Content}
	for _, o := range out.Options {
		draft.Options = append(draft.Options, quiz.Option{
			ID:       o.ID,
			Content:  o.Content,
			Correct:  o.Correct && draft.Kind != quiz.KindChoice,
			Feedback: optional(o.Feedback),
		})
	}
	if draft.Kind == quiz.KindChoice {
		for _, q := range out.Questions {
			draft.Questions = append(draft.Questions, quiz.ChoiceQuestion{
				Content:       q.Content,
				CorrectOption: optional(q.CorrectOption),
				Feedback:      optional(q.Feedback),
			})
		}
	}

	body, err := quiz.Encode(draft)
	if err != nil {
		return quiz.Quiz{}, "", err
	}
	q, err := quiz.Load(string(body))
	if err != nil {
		return quiz.Quiz{}, "", err
	}
	block, err := quiz.EncodeBlock(q)
	if err != nil {
		return quiz.Quiz{}, "", err
	}
	return q, block, nil
}

// optional maps blank strings to absent.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
