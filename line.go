package cssfmt

import "strings"

// FragmentKind identifies what a piece of line text was rendered from.
// Display layers branch on it to apply styling.
type FragmentKind int

const (
	FragmentText FragmentKind = iota
	FragmentSpace
	FragmentComment
	FragmentHeader // nested block header or directive
	FragmentSelector
	FragmentPropertyName
	FragmentPropertyValue
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentText:
		return "text"
	case FragmentSpace:
		return "space"
	case FragmentComment:
		return "comment"
	case FragmentHeader:
		return "header"
	case FragmentSelector:
		return "selector"
	case FragmentPropertyName:
		return "property-name"
	case FragmentPropertyValue:
		return "property-value"
	}
	return "unknown"
}

// Fragment is one typed piece of a Line. The pointer fields reference the
// parsed entity the text came from; which one is set depends on Kind.
type Fragment struct {
	Kind FragmentKind
	Text string

	Comment  *Comment // FragmentComment; nil for synthesized comments
	Part     int      // index of the physical comment line
	Selector *Selector
	Property *Property // FragmentPropertyName, FragmentPropertyValue
	Header   Node      // *NestedBlock or *Directive
}

func (f Fragment) String() string { return f.Text }

// Text returns a plain text fragment.
func Text(s string) Fragment {
	return Fragment{Kind: FragmentText, Text: s}
}

// Space returns a run of n spaces.
func Space(n int) Fragment {
	return Fragment{Kind: FragmentSpace, Text: Spaces(n)}
}

// CommentLine returns the part-th physical line of c.
func CommentLine(c *Comment, part int, text string) Fragment {
	return Fragment{Kind: FragmentComment, Text: text, Comment: c, Part: part}
}

// Line is a single output line: an indent in spaces followed by fragments.
type Line struct {
	Indent    int
	Fragments []Fragment

	// TableIndent is the extra indent applied by the table of contents.
	TableIndent int
	// Entry is the source comment a table of contents entry points at.
	Entry *Comment
}

// NewLine returns a line with the given indent and initial fragments.
func NewLine(indent int, frags ...Fragment) *Line {
	l := &Line{Indent: indent}
	l.Push(frags...)
	return l
}

// Push appends fragments, skipping empty spacing.
func (l *Line) Push(frags ...Fragment) {
	for _, f := range frags {
		if f.Kind == FragmentSpace && f.Text == "" {
			continue
		}
		l.Fragments = append(l.Fragments, f)
	}
}

// trimRight drops trailing spacing fragments.
func (l *Line) trimRight() {
	for n := len(l.Fragments); n > 0 && l.Fragments[n-1].Kind == FragmentSpace; n-- {
		l.Fragments = l.Fragments[:n-1]
	}
}

// Empty reports whether the line has no fragments.
func (l *Line) Empty() bool { return len(l.Fragments) == 0 }

// Width is the length of the line text, excluding the indent.
func (l *Line) Width() int { return textWidth(l.String()) }

// String concatenates the fragment texts, without the indent.
func (l *Line) String() string {
	var b strings.Builder
	for _, f := range l.Fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Lines is an ordered sequence of output lines.
type Lines []*Line

// String renders every line followed by a newline. Blank lines carry no indent.
func (ls Lines) String() string {
	var b strings.Builder
	for _, l := range ls {
		if text := l.String(); text != "" {
			b.WriteString(Spaces(l.Indent))
			b.WriteString(text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
