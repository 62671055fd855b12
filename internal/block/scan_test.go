package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FindsQuizFences(t *testing.T) {
	doc := "# Notes\n\n```quiz\ntype: radio\n```\n\ntext\n\n~~~~ quiz extra\ntype: checkbox\n~~~~\n"
	blocks := Scan([]byte(doc), "quiz")

	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Source: "type: radio\n", Info: "quiz", LineStart: 2, LineEnd: 4}, blocks[0])
	assert.Equal(t, Block{Source: "type: checkbox\n", Info: "quiz extra", LineStart: 8, LineEnd: 10}, blocks[1])
}

func TestScan_SkipsOtherLanguages(t *testing.T) {
	doc := "````markdown\n```quiz\ntype: radio\n```\n````\n"
	assert.Empty(t, Scan([]byte(doc), "quiz"))
}

func TestScan_ClosingFenceMustMatch(t *testing.T) {
	doc := "````quiz\ntype: radio\n```\n~~~~\n````\n"
	blocks := Scan([]byte(doc), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, "type: radio\n```\n~~~~\n", blocks[0].Source)
	assert.Equal(t, 4, blocks[0].LineEnd)
}

func TestScan_UnclosedRunsToEnd(t *testing.T) {
	doc := "intro\n```quiz\ntype: radio\noptions: []"
	blocks := Scan([]byte(doc), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, 1, blocks[0].LineStart)
	assert.Equal(t, 3, blocks[0].LineEnd)
	assert.Equal(t, "type: radio\noptions: []\n", blocks[0].Source)
}

func TestScan_EmptyBlock(t *testing.T) {
	blocks := Scan([]byte("```quiz\n```\n"), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, "", blocks[0].Source)
}

func TestScan_StripsFenceIndent(t *testing.T) {
	doc := "  ```quiz\n  type: radio\n    content: x\n  ```\n"
	blocks := Scan([]byte(doc), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, "type: radio\n  content: x\n", blocks[0].Source)
}

func TestScan_IgnoresIndentedCode(t *testing.T) {
	assert.Empty(t, Scan([]byte("    ```quiz\n    type: radio\n    ```\n"), "quiz"))
}

func TestScan_CRLF(t *testing.T) {
	blocks := Scan([]byte("```quiz\r\ntype: radio\r\n```\r\n"), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, "type: radio\n", blocks[0].Source)
}

func TestScan_BacktickInfoCannotContainBackticks(t *testing.T) {
	assert.Empty(t, Scan([]byte("```quiz `x`\ntype: radio\n```\n"), "quiz"))
}

func TestScan_FenceInsideBlockquote(t *testing.T) {
	doc := "intro\n\n> ```quiz\n> type: radio\n> ```\n"
	blocks := Scan([]byte(doc), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Source: "type: radio\n", Info: "quiz", LineStart: 2, LineEnd: 4}, blocks[0])
}

func TestScan_BlankLinesKeptInBody(t *testing.T) {
	blocks := Scan([]byte("```quiz\ntype: radio\n\ncontent: x\n```\n"), "quiz")

	require.Len(t, blocks, 1)
	assert.Equal(t, "type: radio\n\ncontent: x\n", blocks[0].Source)
	assert.Equal(t, 4, blocks[0].LineEnd)
}
