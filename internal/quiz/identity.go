package quiz

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Location is where a block sits in its source document. Negative line
// numbers mean unknown.
type Location struct {
	SourcePath string
	LineStart  int
	LineEnd    int
}

// StableID returns the identity that scopes a rendered widget: the quiz's
// own id, or a composite of source location and variant.
func StableID(q Quiz, loc Location) string {
	if q.ID != "" {
		return q.ID
	}
	source := loc.SourcePath
	if source == "" {
		source = "unknown"
	}
	return strings.Join([]string{source, lineLabel(loc.LineStart), lineLabel(loc.LineEnd), string(q.Kind)}, "|")
}

func lineLabel(n int) string {
	if n < 0 {
		return "na"
	}
	return strconv.Itoa(n)
}

// HashName hashes s with 32-bit FNV-1a over its UTF-16 code units and
// returns lowercase hex. It only produces a short token for grouping form
// controls; it is not an integrity hash.
func HashName(s string) string {
	h := uint32(2166136261)
	for _, unit := range utf16.Encode([]rune(s)) {
		h ^= uint32(unit)
		h *= 16777619
	}
	return strconv.FormatUint(uint64(h), 16)
}

// GroupName is the control group name of a widget.
func GroupName(stableID string) string {
	return "quiz-" + HashName(stableID)
}
