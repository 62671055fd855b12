package llm

// radioSchema is a trimmed version of the strict radio quiz schema.
func radioSchema() *Schema {
	option := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"content":  map[string]any{"type": "string"},
			"correct":  map[string]any{"type": "boolean"},
			"feedback": map[string]any{"type": "string"},
		},
		"required":             []any{"id", "content", "correct", "feedback"},
		"additionalProperties": false,
	}
	return &Schema{
		Name:        "test-quiz-radio",
		Description: "A radio quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":    map[string]any{"type": "string", "enum": []any{"radio"}},
				"content": map[string]any{"type": "string"},
				"options": map[string]any{"type": "array", "items": option},
			},
			"required":             []any{"type", "content", "options"},
			"additionalProperties": false,
		},
	}
}

const radioJSON = `{"type":"radio","content":"Largest planet?","options":[` +
	`{"id":"jupiter","content":"Jupiter","correct":true,"feedback":"By far."},` +
	`{"id":"mars","content":"Mars","correct":false,"feedback":""}]}`
