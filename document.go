package cssfmt

import "strings"

// Span is a half-open range [Start, End) of byte offsets into the parsed source.
type Span struct {
	Start int
	End   int
}

// Node is an entry of a stylesheet or of a nested block's children:
// *Comment, *NestedBlock, *SelectorGroup or *Directive.
type Node interface {
	Pos() Span
	node()
}

// Decl is an entry of a declaration block: *Property or *Comment.
type Decl interface {
	Pos() Span
	decl()
}

// CommentKind records where a comment was found.
type CommentKind int

// Comment kinds
const (
	// SelectorComment sits between rules
	SelectorComment CommentKind = iota
	// PropertyComment sits on its own line inside a declaration block
	PropertyComment
	// InlinePropertyComment follows a property on the same line
	InlinePropertyComment
)

func (k CommentKind) String() string {
	switch k {
	case SelectorComment:
		return "selector"
	case PropertyComment:
		return "property"
	case InlinePropertyComment:
		return "property-inline"
	}
	return "unknown"
}

// Comment is a /* */ comment as found in the source.
type Comment struct {
	ID   int    // unique within one parse, in source order, starting at 1
	Raw  string // including delimiters, CR characters removed
	Text string // Raw without surrounding whitespace
	Kind CommentKind
	Span Span

	// Written by the table of contents pass. TableRank is 0 for comments
	// that are not table entries.
	TableRank   int
	TableIndent int
}

func (c *Comment) Pos() Span      { return c.Span }
func (c *Comment) String() string { return c.Text }
func (c *Comment) node()          {}
func (c *Comment) decl()          {}

// Lines splits the comment text into trimmed physical lines.
func (c *Comment) Lines() []string {
	parts := strings.Split(c.Text, "\n")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// Selector is a single selector of a comma separated selector list.
type Selector struct {
	Name string
}

// NewSelector trims name and wraps it in a Selector.
func NewSelector(name string) *Selector {
	return &Selector{Name: strings.TrimSpace(name)}
}

// HasCombinator reports whether the selector contains a descendant, child,
// next-sibling or subsequent-sibling combinator.
func (s *Selector) HasCombinator() bool {
	return strings.ContainsAny(s.Name, " >+~")
}

func (s *Selector) String() string { return s.Name }

// SelectorGroup is a selector list sharing one declaration block.
type SelectorGroup struct {
	Selectors []*Selector
	Decls     []Decl
	Comments  []*Comment // selector comments directly preceding the group
	Span      Span

	// Indent is a layout stamp in spaces, written by IndentHierarchy.
	Indent int
}

func (g *SelectorGroup) Pos() Span { return g.Span }
func (g *SelectorGroup) node()     {}

// Properties returns the group's properties without interleaved comments.
func (g *SelectorGroup) Properties() []*Property {
	props := make([]*Property, 0, len(g.Decls))
	for _, d := range g.Decls {
		if p, ok := d.(*Property); ok {
			props = append(props, p)
		}
	}
	return props
}

// CompareSpecificity compares the first selectors of g and other.
func (g *SelectorGroup) CompareSpecificity(other *SelectorGroup) int {
	return CompareSpecificity(g.Selectors[0], other.Selectors[0])
}

func (g *SelectorGroup) String() string {
	names := make([]string, len(g.Selectors))
	for i, s := range g.Selectors {
		names[i] = s.Name
	}
	return strings.Join(names, ",")
}

// NestedBlock is a block such as @media whose body holds further rules.
type NestedBlock struct {
	Header   string
	Children []Node
	Comments []*Comment
	Span     Span
}

func (b *NestedBlock) Pos() Span      { return b.Span }
func (b *NestedBlock) String() string { return b.Header }
func (b *NestedBlock) node()          {}

// Directive is a statement at-rule terminated by a semicolon, e.g. @import.
type Directive struct {
	Text     string // without the trailing semicolon
	Comments []*Comment
	Span     Span
}

func (d *Directive) Pos() Span      { return d.Span }
func (d *Directive) String() string { return d.Text }
func (d *Directive) node()          {}

// Property is a name: value declaration.
type Property struct {
	Name    string
	Value   string
	Comment *Comment // inline comment, nil when absent
	Span    Span
}

// NewProperty trims name and value independently.
func NewProperty(name, value string) *Property {
	return &Property{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
}

func (p *Property) Pos() Span { return p.Span }
func (p *Property) decl()     {}

func (p *Property) String() string {
	s := p.Name + ": " + p.Value + ";"
	if p.Comment != nil {
		s += " " + p.Comment.Text
	}
	return s
}
