package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// compiledSchemas caches the field schema per variant.
var compiledSchemas sync.Map // map[Kind]*jsonschema.Schema

var issuePrinter = message.NewPrinter(language.English)

// fieldSchema describes the field types of a canonical tree. Presence and
// cross-field rules are checked separately so the messages can name the
// exact field.
func fieldSchema(kind Kind) map[string]any {
	option := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"content":  map[string]any{"type": "string"},
			"correct":  map[string]any{"type": "boolean"},
			"feedback": map[string]any{"type": "string"},
		},
	}
	props := map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"content": map[string]any{"type": "string"},
		"options": map[string]any{"type": "array", "items": option},
	}
	if kind == KindChoice {
		props["questions"] = map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string"},
					"content":        map[string]any{"type": "string"},
					"correct_option": map[string]any{"type": "string"},
					"feedback":       map[string]any{"type": "string"},
				},
			},
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

// JSONSchema returns a strict schema of the canonical quiz shape for one
// variant, suitable for structured LLM output. Every property is required
// and blank feedback stands for none.
func JSONSchema(kind Kind) map[string]any {
	option := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string", "description": "Short stable identifier, unique within the quiz"},
			"content":  map[string]any{"type": "string", "description": "Option text (Markdown allowed)"},
			"correct":  map[string]any{"type": "boolean", "description": "Whether this option is a correct answer"},
			"feedback": map[string]any{"type": "string", "description": "Explanation shown after checking, or empty"},
		},
		"required":             []any{"id", "content", "correct", "feedback"},
		"additionalProperties": false,
	}
	props := map[string]any{
		"type":    map[string]any{"type": "string", "enum": []any{string(kind)}},
		"content": map[string]any{"type": "string", "description": "The quiz prompt (Markdown allowed)"},
		"options": map[string]any{"type": "array", "items": option},
	}
	required := []any{"type", "content", "options"}
	if kind == KindChoice {
		option["properties"].(map[string]any)["correct"] = map[string]any{
			"type":        "boolean",
			"description": "Always false for choice quizzes",
		}
		props["questions"] = map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content":        map[string]any{"type": "string", "description": "The situation to match"},
					"correct_option": map[string]any{"type": "string", "description": "id of the matching option"},
					"feedback":       map[string]any{"type": "string", "description": "Explanation shown after checking, or empty"},
				},
				"required":             []any{"content", "correct_option", "feedback"},
				"additionalProperties": false,
			},
		}
		required = append(required, "questions")
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// compiledSchema returns a cached compiled field schema for kind.
func compiledSchema(kind Kind) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(kind); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants decoded JSON values, not Go literals.
	defBytes, err := json.Marshal(fieldSchema(kind))
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://quiz-%s.json", kind)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledSchemas.Store(kind, compiled)
	return compiled, nil
}

// checkFields validates field types of a canonical tree and turns every
// leaf schema error into an Issue.
func checkFields(kind Kind, tree map[string]any) []Issue {
	schema, err := compiledSchema(kind)
	if err != nil {
		return []Issue{{Path: Path{}, Message: fmt.Sprintf("schema unavailable: %v", err)}}
	}
	err = schema.Validate(any(tree))
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []Issue{{Path: Path{}, Message: err.Error()}}
	}

	var issues []Issue
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			issues = append(issues, Issue{
				Path:    instancePath(e.InstanceLocation),
				Message: e.ErrorKind.LocalizedString(issuePrinter),
			})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)

	// Causes follow property map order; pin them down.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path.compare(issues[j].Path) < 0
	})
	return issues
}

// instancePath converts a JSON pointer split into tokens. Canonical trees
// only carry known keys, so numeric tokens are always sequence indexes.
func instancePath(tokens []string) Path {
	path := make(Path, 0, len(tokens))
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			path = append(path, n)
			continue
		}
		path = append(path, tok)
	}
	return path
}
