package author

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order after quiz.Load accepts the draft. The first
	// failure stops the chain.
	Validators []Validator

	// MaxTokens is the token budget for one response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Options and Questions are the defaults for Input fields left at zero.
	Options   int
	Questions int

	// MaxRepairs is the number of follow-up turns that feed problems back
	// to the model before giving up.
	MaxRepairs int

	// MaxAvoid caps the number of existing prompts listed in the request.
	MaxAvoid int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{}, &AnswerKeyValidator{}},
		MaxTokens:   1500,
		Temperature: 0.7,
		Options:     4,
		Questions:   3,
		MaxRepairs:  1,
		MaxAvoid:    8,
	}
}

// withDefaults fills zero counts from cfg.
func (in Input) withDefaults(cfg Config) Input {
	if in.Options <= 0 {
		in.Options = cfg.Options
	}
	if in.Questions <= 0 {
		in.Questions = cfg.Questions
	}
	return in
}
