package render

import (
	"context"

	"github.com/abhisek/quizblocks/internal/engine"
	"github.com/abhisek/quizblocks/internal/quiz"
)

// View is a widget snapshot with every markdown fragment rendered.
type View struct {
	engine.Snapshot

	Title     Fragment
	Rows      []RowView
	Questions []QuestionView
}

// RowView is a rendered option row.
type RowView struct {
	engine.RowSnapshot

	Text         Fragment
	FeedbackText Fragment
}

// QuestionView is a rendered choice question.
type QuestionView struct {
	engine.QuestionSnapshot

	Text         Fragment
	Choices      []ChoiceLabel
	AnswerText   Fragment
	FeedbackText Fragment
}

// ChoiceLabel is a dropdown entry with its plain-text label.
type ChoiceLabel struct {
	ID    string
	Label string
}

// Widget renders the fragments of snap strictly in document order.
func Widget(ctx context.Context, r Renderer, sourcePath string, snap engine.Snapshot) (View, error) {
	v := View{Snapshot: snap}

	var err error
	if v.Title, err = r.Render(ctx, snap.Content, sourcePath); err != nil {
		return View{}, err
	}

	if snap.Kind == quiz.KindChoice {
		v.Questions, err = questions(ctx, r, sourcePath, snap.Questions)
	} else {
		v.Rows, err = rows(ctx, r, sourcePath, snap.Rows)
	}
	if err != nil {
		return View{}, err
	}
	return v, nil
}

func rows(ctx context.Context, r Renderer, sourcePath string, in []engine.RowSnapshot) ([]RowView, error) {
	out := make([]RowView, 0, len(in))
	for _, row := range in {
		rv := RowView{RowSnapshot: row}
		var err error
		if rv.Text, err = r.Render(ctx, row.Content, sourcePath); err != nil {
			return nil, err
		}
		if row.Feedback != nil && row.Feedback.Text != "" {
			if rv.FeedbackText, err = r.Render(ctx, row.Feedback.Text, sourcePath); err != nil {
				return nil, err
			}
		}
		out = append(out, rv)
	}
	return out, nil
}

func questions(ctx context.Context, r Renderer, sourcePath string, in []engine.QuestionSnapshot) ([]QuestionView, error) {
	labels := map[string]string{}
	out := make([]QuestionView, 0, len(in))

	for _, q := range in {
		qv := QuestionView{QuestionSnapshot: q}
		var err error
		if qv.Text, err = r.Render(ctx, q.Content, sourcePath); err != nil {
			return nil, err
		}

		for _, c := range q.Choices {
			label, ok := labels[c.ID]
			if !ok {
				if label, err = ChoiceText(ctx, r, c, sourcePath); err != nil {
					return nil, err
				}
				labels[c.ID] = label
			}
			qv.Choices = append(qv.Choices, ChoiceLabel{ID: c.ID, Label: label})
		}

		if a := q.Answer; a != nil {
			if a.Resolved {
				if qv.AnswerText, err = r.Render(ctx, a.Content, sourcePath); err != nil {
					return nil, err
				}
			} else {
				// An unknown option id is shown as typed.
				qv.AnswerText = Fragment{Text: a.Content, Plain: a.Content}
			}
			if a.Feedback != nil {
				if qv.FeedbackText, err = r.Render(ctx, a.Feedback.Text, sourcePath); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, qv)
	}
	return out, nil
}

// ChoiceText is the dropdown label of a choice: its plain-text content,
// or its id when the content renders empty.
func ChoiceText(ctx context.Context, r Renderer, c engine.Choice, sourcePath string) (string, error) {
	label, err := PlainText(ctx, r, c.Content, sourcePath)
	if err != nil {
		return "", err
	}
	if label == "" {
		return c.ID, nil
	}
	return label, nil
}
