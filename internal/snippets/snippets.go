// Package snippets holds the starter templates inserted by the snippet
// command.
package snippets

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizblocks/internal/quiz"
)

const radio = `type: radio
content: >-
  Your question here?

options:
- content: ""
  feedback: ""
- content: ""
  feedback: ""
  correct: true
`

const checkbox = `type: checkbox
content: >-
  Your question here?

options:
- content: ""
  feedback: ""
- content: ""
  feedback: ""
  correct: true
`

const choice = `type: choice
content: >-
  Match each situation with the correct option.

options:
- id: opt1
  content: "Option 1"
- id: opt2
  content: "Option 2"

questions:
- content: "Situation #1"
  correct_option: opt1
- content: "Situation #2"
  correct_option: opt2
`

var bodies = map[quiz.Kind]string{
	quiz.KindRadio:    radio,
	quiz.KindCheckbox: checkbox,
	quiz.KindChoice:   choice,
}

// Body returns the YAML body of the template for kind.
func Body(kind quiz.Kind) (string, error) {
	body, ok := bodies[kind]
	if !ok {
		return "", fmt.Errorf("no snippet for quiz type %q", kind)
	}
	return body, nil
}

// Block returns the template for kind wrapped in a quiz fence, without a
// trailing newline so it can be inserted at a cursor.
func Block(kind quiz.Kind) (string, error) {
	body, err := Body(kind)
	if err != nil {
		return "", err
	}
	fence := "```"
	return fence + quiz.FenceLanguage + "\n" + body + fence, nil
}

// Names lists the template names in display order.
func Names() []string {
	names := make([]string, 0, len(quiz.Kinds))
	for _, k := range quiz.Kinds {
		names = append(names, string(k))
	}
	return names
}

// Lookup resolves a template by name, case-insensitively.
func Lookup(name string) (quiz.Kind, bool) {
	k := quiz.Kind(strings.ToLower(strings.TrimSpace(name)))
	_, ok := bodies[k]
	return k, ok
}
