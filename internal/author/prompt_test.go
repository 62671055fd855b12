package author

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizblocks/internal/quiz"
)

func TestBuildAvoid(t *testing.T) {
	assert.Equal(t, "None", buildAvoid(nil, 5))

	prompts := []string{"one", "two\n  lines", "three"}
	assert.Equal(t, "1. two lines\n2. three", buildAvoid(prompts, 2))
	assert.Equal(t, "1. one\n2. two lines\n3. three", buildAvoid(prompts, 0))
}

func TestRepairMessage(t *testing.T) {
	verr := &quiz.ValidationError{Issues: []quiz.Issue{
		{Path: quiz.Path{"options", 0, "id"}, Message: "is required"},
	}}
	msg := repairMessage(verr)
	assert.Contains(t, msg, "- options[0].id: is required\n")
	assert.True(t, strings.HasSuffix(msg, "Return the corrected quiz in full."))

	msg = repairMessage(errors.New("decode quiz JSON: unexpected EOF"))
	assert.Contains(t, msg, "- decode quiz JSON: unexpected EOF\n")
}

func TestSchemaName(t *testing.T) {
	for _, kind := range quiz.Kinds {
		s := Schema(kind)
		assert.Equal(t, "quiz-"+string(kind), s.Name)
		assert.NotEmpty(t, s.Definition["properties"])
	}
}
