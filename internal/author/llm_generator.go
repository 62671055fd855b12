package author

import (
	"context"
	"fmt"

	"github.com/abhisek/quizblocks/internal/llm"
	"github.com/abhisek/quizblocks/internal/quiz"
)

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Schema returns the structured output schema requested for kind.
func Schema(kind quiz.Kind) *llm.Schema {
	return &llm.Schema{
		Name:        "quiz-" + string(kind),
		Description: fmt.Sprintf("A %s quiz block", kind),
		Definition:  quiz.JSONSchema(kind),
	}
}

// Generate drafts a quiz, feeding load and validator failures back to the
// model up to MaxRepairs times. The last failure is returned when every
// attempt is rejected; a *quiz.ValidationError stays reachable with
// errors.As.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*Result, error) {
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("unknown quiz type %q", input.Kind)
	}
	input = input.withDefaults(g.config)

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)}},
		Schema:      Schema(input.Kind),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	callCtx := llm.WithPurpose(ctx, llm.PurposeAuthoring)
	var usage llm.Usage
	for attempt := 1; ; attempt++ {
		resp, err := g.provider.Generate(callCtx, req)
		if err != nil {
			return nil, fmt.Errorf("LLM generation failed: %w", err)
		}
		usage.InputTokens += resp.Usage.InputTokens
		usage.OutputTokens += resp.Usage.OutputTokens
		usage.TotalTokens += resp.Usage.TotalTokens

		q, block, problem := g.accept(resp, input)
		if problem == nil {
			return &Result{Quiz: q, Block: block, Attempts: attempt, Usage: usage}, nil
		}
		if attempt > g.config.MaxRepairs {
			return nil, problem
		}

		callCtx = llm.WithPurpose(ctx, llm.PurposeRepair)
		req = req.Followup(string(resp.Content), repairMessage(problem))
	}
}

func (g *LLMGenerator) accept(resp *llm.Response, input Input) (quiz.Quiz, string, error) {
	q, block, err := decodeDraft(resp.Content)
	if err != nil {
		return quiz.Quiz{}, "", err
	}
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return quiz.Quiz{}, "", verr
		}
	}
	return q, block, nil
}
