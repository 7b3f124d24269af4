package json

import "strings"

// DefaultIndentFactor is the number of spaces per nesting level used by
// PrintableWriter unless overridden with WithIndentFactor.
const DefaultIndentFactor = 2

// Indenter memoizes the leading-whitespace string for each nesting depth.
// It belongs to a single writer session and is not safe for concurrent use.
type Indenter struct {
	factor  int
	strings []string
}

// NewIndenter returns an Indenter producing factor spaces per depth level.
// A negative factor is treated as DefaultIndentFactor.
func NewIndenter(factor int) *Indenter {
	if factor < 0 {
		factor = DefaultIndentFactor
	}
	return &Indenter{factor: factor}
}

// For returns the indentation string for the given depth: exactly
// depth*factor space characters. Entries are synthesized on first use and
// reused thereafter.
func (in *Indenter) For(depth int) string {
	for len(in.strings) <= depth {
		in.strings = append(in.strings, strings.Repeat(" ", len(in.strings)*in.factor))
	}
	return in.strings[depth]
}

// Factor returns the configured spaces-per-level.
func (in *Indenter) Factor() int { return in.factor }
