package features

import "strings"

// RunKind distinguishes the two kinds of text a description is built from.
type RunKind uint8

const (
	RunPlain RunKind = iota
	RunEmphasis
)

func (k RunKind) String() string {
	switch k {
	case RunPlain:
		return "plain"
	case RunEmphasis:
		return "emphasis"
	default:
		return "unknown"
	}
}

// Run is one span of description text.
type Run struct {
	Kind RunKind
	Text string
}

// Plain returns an unformatted run.
func Plain(text string) Run {
	return Run{Kind: RunPlain, Text: text}
}

// Emphasis returns an emphasized run.
func Emphasis(text string) Run {
	return Run{Kind: RunEmphasis, Text: text}
}

// Description is rich text made of ordered runs. A nil or empty description
// is valid and renders as an empty paragraph.
type Description []Run

// Describe builds a description from runs.
func Describe(runs ...Run) Description {
	return Description(runs).clone()
}

// String returns the description text with formatting dropped.
func (d Description) String() string {
	var b strings.Builder
	for _, r := range d {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (d Description) clone() Description {
	if d == nil {
		return nil
	}
	out := make(Description, len(d))
	copy(out, d)
	return out
}
