package cssfmt

import "strings"

// Formatter lays out parsed nodes as Lines.
type Formatter struct {
	opts FormatOptions
}

// NewFormatter returns a Formatter using opts.
func NewFormatter(opts FormatOptions) *Formatter {
	return &Formatter{opts: opts}
}

// Format lays out nodes with opts.
func Format(nodes []Node, opts FormatOptions) Lines {
	return NewFormatter(opts).Format(nodes)
}

// Format lays out nodes. Fragments of the returned lines point at the
// nodes they were rendered from. With Selectors.Hierarchy set the groups'
// Indent stamps are rewritten.
func (f *Formatter) Format(nodes []Node) Lines {
	if len(nodes) == 0 {
		return nil
	}
	if f.opts.Selectors.Hierarchy {
		IndentHierarchy(nodes, f.opts.Indent)
	}

	st := &formatState{current: &Line{}}
	f.formatNodes(st, nodes, 0)
	st.newLine(0)
	return st.lines
}

// formatState is the line under construction and the lines finished so far.
type formatState struct {
	lines   Lines
	current *Line
}

func (st *formatState) hasLines() bool {
	return len(st.lines) > 0 || !st.current.Empty()
}

// newLine finishes the current line, even when it is empty.
func (st *formatState) newLine(indent int) {
	st.lines = append(st.lines, st.current)
	st.current = &Line{Indent: indent}
}

func (st *formatState) emptyLines(n, indent int) {
	for range n {
		st.newLine(indent)
	}
}

func (f *Formatter) formatNodes(st *formatState, nodes []Node, indent int) {
	var prev Node
	for _, n := range nodes {
		_, afterComment := prev.(*Comment)
		afterComment = afterComment && f.opts.Comments.Render

		switch n := n.(type) {
		case *Comment:
			f.formatComment(st, n, indent)
		case *NestedBlock:
			f.formatBlock(st, n, afterComment, indent)
		case *SelectorGroup:
			f.formatSelectors(st, n, afterComment, indent)
			f.formatDecls(st, n, indent)
		case *Directive:
			f.formatDirective(st, n, afterComment, indent)
		}
		prev = n
	}
}

func (f *Formatter) formatComment(st *formatState, c *Comment, indent int) {
	copts := f.opts.Comments
	if !copts.Render {
		return
	}

	if st.hasLines() {
		st.newLine(indent)
		st.emptyLines(copts.LinesBefore, indent)
	}
	for i, text := range commentLines(c) {
		if i > 0 {
			st.newLine(indent)
		}
		st.current.Push(CommentLine(c, i, text))
	}
	st.emptyLines(copts.LinesAfter, indent)
}

func (f *Formatter) formatBlock(st *formatState, b *NestedBlock, afterComment bool, indent int) {
	if f.opts.Selectors.NewLine && st.hasLines() {
		st.newLine(indent)
	}
	f.linesBeforeRule(st, indent, afterComment, true)

	st.current.Push(Fragment{Kind: FragmentHeader, Text: b.Header, Header: b})
	f.openBrace(st, indent)
	f.formatNodes(st, b.Children, indent+f.opts.Indent)
	f.closeBrace(st, indent)
}

func (f *Formatter) formatDirective(st *formatState, d *Directive, afterComment bool, indent int) {
	if f.opts.Selectors.NewLine && st.hasLines() {
		st.newLine(indent)
	}
	f.linesBeforeRule(st, indent, afterComment, false)

	st.current.Push(Fragment{Kind: FragmentHeader, Text: d.Text, Header: d}, Text(";"))
}

func (f *Formatter) formatSelectors(st *formatState, g *SelectorGroup, afterComment bool, indent int) {
	sopts := f.opts.Selectors
	indent += f.groupIndent(g)

	if sopts.NewLine && st.hasLines() {
		st.newLine(indent)
	}
	f.linesBeforeRule(st, indent, afterComment, len(g.Selectors) > 1)

	last := len(g.Selectors) - 1
	for i, sel := range g.Selectors {
		frags := []Fragment{{Kind: FragmentSelector, Text: sel.Name, Selector: sel}}
		if i != last {
			frags = append(frags, Text(","), Space(sopts.Multispace))
		}

		var wrap bool
		switch {
		case sopts.MaxLength == 0:
		case sopts.ForcePerLine:
			wrap = i != last
		case sopts.CombinatedPerLine && sel.HasCombinator():
			if i != 0 && !st.current.Empty() {
				st.current.trimRight()
				st.newLine(indent)
			}
			wrap = i != last
		default:
			wrap = i != last && st.current.Width()+fragmentsWidth(frags) > sopts.MaxLength
		}

		st.current.Push(frags...)
		if wrap {
			st.current.trimRight()
			st.newLine(indent)
		}
	}

	f.openBrace(st, indent)
}

// linesBeforeRule adds the blank lines that separate a rule from what
// precedes it. multi marks nested blocks and multi-selector rules.
func (f *Formatter) linesBeforeRule(st *formatState, indent int, afterComment, multi bool) {
	if !st.hasLines() {
		return
	}

	sopts := f.opts.Selectors
	n := sopts.LinesBefore
	switch {
	case afterComment:
		n = sopts.LinesBeforeComment
	case multi && sopts.LinesBeforeMulti > 0:
		n = max(n, sopts.LinesBeforeMulti)
	}
	st.emptyLines(n, indent)
}

func (f *Formatter) formatDecls(st *formatState, g *SelectorGroup, indent int) {
	popts, copts := f.opts.Property, f.opts.Comments
	indent += f.groupIndent(g)
	inner := indent + f.opts.Indent

	var last *Property
	if props := g.Properties(); len(props) > 0 {
		last = props[len(props)-1]
	}

	for _, d := range g.Decls {
		switch d := d.(type) {
		case *Comment:
			if !copts.Render || !copts.RenderProperty {
				continue
			}
			for i, text := range commentLines(d) {
				if i > 0 || popts.NewLine {
					st.newLine(indent)
				}
				st.current.Push(Space(1), CommentLine(d, i, text))
			}

		case *Property:
			if popts.NewLine {
				st.newLine(inner)
			}
			st.current.Push(
				Fragment{Kind: FragmentPropertyName, Text: d.Name, Property: d},
				Text(":"),
				Space(popts.SpaceBetween),
				Fragment{Kind: FragmentPropertyValue, Text: d.Value, Property: d},
			)
			inline := d.Comment != nil && copts.Render && copts.RenderPropertyInline
			// An inline comment after an unterminated value would read back
			// as part of the value.
			if d != last || popts.CloseLast || inline {
				st.current.Push(Text(";"))
			}

			if inline {
				for i, text := range commentLines(d.Comment) {
					if i == 0 {
						st.current.Push(Space(copts.InlineSpace))
					} else {
						st.newLine(inner)
					}
					st.current.Push(CommentLine(d.Comment, i, text))
				}
			}
			st.current.Push(Space(popts.IndentAfter))
		}
	}

	f.closeBrace(st, indent)
}

// groupIndent is the hierarchy stamp of g, ignored unless hierarchy
// layout is enabled.
func (f *Formatter) groupIndent(g *SelectorGroup) int {
	if !f.opts.Selectors.Hierarchy {
		return 0
	}
	return g.Indent
}

func (f *Formatter) openBrace(st *formatState, indent int) {
	b := f.opts.Braces
	if b.OpenNewLine {
		st.newLine(indent)
	}
	st.current.Push(Space(b.OpenIndent), Text("{"), Space(b.OpenIndentAfter))
}

func (f *Formatter) closeBrace(st *formatState, indent int) {
	b := f.opts.Braces
	if b.CloseNewLine {
		st.newLine(indent)
	}
	st.current.Push(Space(b.CloseIndent), Text("}"), Space(b.CloseIndentAfter))
}

// commentLines returns the physical lines of c. Continuation lines that
// start with '*' are shifted by one column to line up under the opening "/*".
func commentLines(c *Comment) []string {
	parts := c.Lines()
	for i := 1; i < len(parts); i++ {
		if strings.HasPrefix(parts[i], "*") {
			parts[i] = " " + parts[i]
		}
	}
	return parts
}

func fragmentsWidth(frags []Fragment) int {
	n := 0
	for _, f := range frags {
		n += textWidth(f.Text)
	}
	return n
}
