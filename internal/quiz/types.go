package quiz

// Kind discriminates the quiz variants.
type Kind string

const (
	// KindRadio is a single-answer quiz.
	KindRadio Kind = "radio"

	// KindCheckbox is a multi-answer quiz.
	KindCheckbox Kind = "checkbox"

	// KindChoice maps each question to one of a shared set of options.
	KindChoice Kind = "choice"
)

// Kinds lists every supported variant in declaration order.
var Kinds = []Kind{KindRadio, KindCheckbox, KindChoice}

// Valid reports whether k is one of the supported variants.
func (k Kind) Valid() bool {
	switch k {
	case KindRadio, KindCheckbox, KindChoice:
		return true
	}
	return false
}

// Quiz is a validated quiz definition. It is built once per render pass
// and never mutated afterwards.
type Quiz struct {
	// ID is the optional stable identity override. Empty means absent.
	ID string

	// Kind is the variant discriminator.
	Kind Kind

	// Content is the prompt shown above the options.
	Content string

	// Options is the ordered option list shared by all variants.
	Options []Option

	// Questions is populated only for KindChoice.
	Questions []ChoiceQuestion
}

// Option is one selectable answer.
type Option struct {
	// ID defaults to Content when the block omits it.
	ID       string
	Content  string
	Correct  bool
	Feedback *string
}

// Key returns the identity used for form values and option lookup.
func (o Option) Key() string {
	if o.ID != "" {
		return o.ID
	}
	return o.Content
}

// ChoiceQuestion is one prompt of a choice quiz.
type ChoiceQuestion struct {
	ID      string
	Content string

	// CorrectOption references an Option.ID. Nil means the question can
	// never be answered correctly.
	CorrectOption *string

	Feedback *string
}

// FindOption returns the option whose key equals id.
func (q Quiz) FindOption(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.Key() == id {
			return o, true
		}
	}
	return Option{}, false
}

// HasFeedback reports whether text is set and not blank.
func HasFeedback(text *string) bool {
	if text == nil {
		return false
	}
	for _, r := range *text {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			continue
		}
		return true
	}
	return false
}
