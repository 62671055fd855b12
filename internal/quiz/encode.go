package quiz

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FenceLanguage is the info string that marks a quiz block.
const FenceLanguage = "quiz"

type encodedQuiz struct {
	ID        string             `yaml:"id,omitempty"`
	Type      Kind               `yaml:"type"`
	Content   string             `yaml:"content"`
	Options   []encodedOption    `yaml:"options"`
	Questions *[]encodedQuestion `yaml:"questions,omitempty"`
}

type encodedOption struct {
	ID       string  `yaml:"id,omitempty"`
	Content  string  `yaml:"content"`
	Correct  bool    `yaml:"correct,omitempty"`
	Feedback *string `yaml:"feedback,omitempty"`
}

type encodedQuestion struct {
	ID            string  `yaml:"id,omitempty"`
	Content       string  `yaml:"content"`
	CorrectOption *string `yaml:"correct_option,omitempty"`
	Feedback      *string `yaml:"feedback,omitempty"`
}

// Encode serializes q as canonical YAML. Loading the output yields q
// again.
func Encode(q Quiz) ([]byte, error) {
	doc := encodedQuiz{
		ID:      q.ID,
		Type:    q.Kind,
		Content: q.Content,
		Options: make([]encodedOption, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		doc.Options = append(doc.Options, encodedOption{
			ID:       o.ID,
			Content:  o.Content,
			Correct:  o.Correct,
			Feedback: o.Feedback,
		})
	}
	if q.Kind == KindChoice {
		questions := make([]encodedQuestion, 0, len(q.Questions))
		for _, cq := range q.Questions {
			questions = append(questions, encodedQuestion{
				ID:            cq.ID,
				Content:       cq.Content,
				CorrectOption: cq.CorrectOption,
				Feedback:      cq.Feedback,
			})
		}
		doc.Questions = &questions
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode quiz: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode quiz: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBlock serializes q wrapped in a fenced quiz block.
func EncodeBlock(q Quiz) (string, error) {
	body, err := Encode(q)
	if err != nil {
		return "", err
	}
	return "```" + FenceLanguage + "\n" + string(body) + "```\n", nil
}
