package render

import (
	"context"
	"strings"
	"testing"
)

func TestPlain_StripsInlineMarkup(t *testing.T) {
	cases := []struct{ in, want string }{
		{"**bold** and *italic*", "bold and italic"},
		{"__strong__ and _emph_.", "strong and emph."},
		{"snake_case_name stays", "snake_case_name stays"},
		{"use `x *= 2` here", "use x *= 2 here"},
		{"see [the docs](https://x.io)", "see the docs"},
		{"![diagram](img.png)", "diagram"},
		{"[[Note]] and [[Other|alias]]", "Note and alias"},
		{"[[Page#Heading]]", "Page"},
		{"~~old~~ ==new==", "old new"},
		{"## Heading", "Heading"},
		{"> quoted", "quoted"},
		{"odd ` tick", "odd ` tick"},
		{"  padded  ", "padded"},
		{`\*not emphasis\*`, "*not emphasis*"},
		{`a \_b\_ \[c\]`, "a _b_ [c]"},
		{"[link](http://a.b/c_(d))", "link"},
		{"<https://x.io/a>", "https://x.io/a"},
		{"`\\*raw*`", `\*raw*`},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"2 == 2 stays", "2 == 2 stays"},
		{"- one\n- two", "• one\n• two"},
		{"1. first\n2. second", "1. first\n2. second"},
	}
	for _, c := range cases {
		got, err := Plain{}.Render(context.Background(), c.in, "")
		if err != nil {
			t.Fatalf("Render(%q): %v", c.in, err)
		}
		if got.Text != c.want || got.Plain != c.want {
			t.Errorf("Render(%q) = %q / %q, want %q", c.in, got.Text, got.Plain, c.want)
		}
	}
}

func TestPlainText_CollapsesWhitespace(t *testing.T) {
	got, err := PlainText(context.Background(), Plain{}, "first line\n\n  **second**\tline ", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "first line second line" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestTerminal_PlainMatchesPlainRenderer(t *testing.T) {
	md := "a **b** `c` [d](e)"
	frag, err := NewTerminal().Render(context.Background(), md, "")
	if err != nil {
		t.Fatal(err)
	}
	if frag.Plain != "a b c d" {
		t.Errorf("Plain = %q", frag.Plain)
	}
	if !strings.Contains(frag.Text, "b") || !strings.Contains(frag.Text, "d") {
		t.Errorf("Text lost content: %q", frag.Text)
	}
}

func TestRender_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (Plain{}).Render(ctx, "x", ""); err == nil {
		t.Error("Plain should fail on a cancelled context")
	}
	if _, err := NewTerminal().Render(ctx, "x", ""); err == nil {
		t.Error("Terminal should fail on a cancelled context")
	}
}
