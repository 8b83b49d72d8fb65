package cssfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultKeywords are the prefixes that open a nested block.
var DefaultKeywords = []string{"@media"}

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("css syntax error")

// SyntaxError reports why and where parsing stopped.
type SyntaxError struct {
	Msg      string
	Fragment string // offending source text, shortened
	Offset   int    // byte offset into the source
	Line     int    // 1-based
	Column   int    // 1-based, in characters
}

func (e *SyntaxError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s: %q", e.Line, e.Column, e.Msg, e.Fragment)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parser turns stylesheet text into a sequence of nodes.
type Parser struct {
	keywords []string
}

// NewParser returns a parser that opens nested blocks for the given
// keywords, checked in order. Without keywords DefaultKeywords is used.
func NewParser(keywords ...string) *Parser {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	return &Parser{keywords: keywords}
}

// Parse parses src with the default keywords.
func Parse(src string) ([]Node, error) {
	return NewParser().Parse(src)
}

// Parse parses src into comments, nested blocks, selector groups and
// directives in source order. Any syntax error aborts the whole parse.
func (p *Parser) Parse(src string) ([]Node, error) {
	s := &scanner{src: src, keywords: p.keywords}
	return s.parseBlock(0)
}

type parseMode int

const (
	modeNone parseMode = iota
	modeProperty
	modeValue
)

// scanner holds the cursor shared by a parse and all of its nested blocks.
type scanner struct {
	src      string
	pos      int
	keywords []string
	comments int
}

// parseBlock parses rules until the end of input (depth 0) or until the
// closing brace of the enclosing nested block, which it consumes.
func (s *scanner) parseBlock(depth int) ([]Node, error) {
	var (
		nodes   []Node
		pending []*Comment // selector comments waiting for their rule
		group   *SelectorGroup
		prop    *Property // name parsed, value pending
		prev    *Property // last finished property of group
		mode    = modeNone
	)

	finishGroup := func() {
		group.Span.End = s.pos
		group, prev, mode = nil, nil, modeNone
	}

	for {
		newline := s.skipSpace()
		if s.eof() {
			break
		}
		ch := s.src[s.pos]

		if ch == '/' && mode != modeValue {
			kind := PropertyComment
			switch {
			case mode == modeNone:
				kind = SelectorComment
			case !newline && prev != nil && prev.Comment == nil:
				kind = InlinePropertyComment
			}

			c, err := s.scanComment(kind)
			if err != nil {
				return nil, err
			}

			switch kind {
			case SelectorComment:
				nodes = append(nodes, c)
				pending = append(pending, c)
			case InlinePropertyComment:
				prev.Comment = c
			default:
				group.Decls = append(group.Decls, c)
			}
			continue
		}

		switch mode {
		case modeNone:
			if ch == '}' {
				if depth == 0 {
					return nil, s.errorf(s.pos, "}", "unexpected '}' outside of a block")
				}
				s.pos++
				return nodes, nil
			}

			if s.matchKeyword() != "" {
				block, err := s.parseNested(depth)
				if err != nil {
					return nil, err
				}
				block.Comments, pending = pending, nil
				nodes = append(nodes, block)
				continue
			}

			if ch == '@' {
				if d := s.scanDirective(); d != nil {
					d.Comments, pending = pending, nil
					nodes = append(nodes, d)
					continue
				}
			}

			g, err := s.scanSelectors()
			if err != nil {
				return nil, err
			}
			if g == nil {
				// Selector list cut short by '}' or the end of input; the
				// next iteration deals with whichever it was.
				continue
			}

			g.Comments, pending = pending, nil
			nodes = append(nodes, g)
			group, prev = g, nil
			s.pos++ // '{'
			mode = modeProperty

		case modeProperty:
			p, end, err := s.scanPropertyName()
			if err != nil {
				return nil, err
			}
			if end {
				finishGroup()
				continue
			}
			if p == nil {
				continue
			}
			prop, mode = p, modeValue

		case modeValue:
			end, err := s.scanValue(prop)
			if err != nil {
				return nil, err
			}
			group.Decls = append(group.Decls, prop)
			prev, prop = prop, nil
			if end {
				finishGroup()
			} else {
				mode = modeProperty
			}
		}
	}

	if mode != modeNone {
		return nil, s.errorf(len(s.src), group.String(), "unexpected end of input in declaration block")
	}
	if depth > 0 {
		return nil, s.errorf(len(s.src), "", "unexpected end of input in nested block")
	}
	return nodes, nil
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// skipSpace advances over spaces, tabs and line breaks and reports whether
// a line break was crossed.
func (s *scanner) skipSpace() bool {
	newline := false
	for ; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case ' ', '\t':
		case '\r', '\n':
			newline = true
		default:
			return newline
		}
	}
	return newline
}

// scanComment consumes a /* */ comment starting at the cursor.
func (s *scanner) scanComment(kind CommentKind) (*Comment, error) {
	start := s.pos
	if !strings.HasPrefix(s.src[start:], "/*") {
		return nil, s.errorf(start, "/", "illegal character '/'")
	}

	end := strings.Index(s.src[start+2:], "*/")
	if end < 0 {
		return nil, s.errorf(start, s.src[start:], "unterminated comment")
	}
	end += start + 4
	s.pos = end
	s.comments++

	raw := strings.ReplaceAll(s.src[start:end], "\r", "")
	return &Comment{
		ID:   s.comments,
		Raw:  raw,
		Text: strings.TrimSpace(raw),
		Kind: kind,
		Span: Span{Start: start, End: end},
	}, nil
}

// matchKeyword returns the first nested block keyword the input continues with.
func (s *scanner) matchKeyword() string {
	rest := s.src[s.pos:]
	for _, kw := range s.keywords {
		if kw != "" && strings.HasPrefix(rest, kw) {
			return kw
		}
	}
	return ""
}

// parseNested reads a block header up to the first unescaped '{' and
// parses the block body with the same cursor.
func (s *scanner) parseNested(depth int) (*NestedBlock, error) {
	start := s.pos
	escaped := false

	for ; s.pos < len(s.src); s.pos++ {
		ch := s.src[s.pos]
		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '{':
			block := &NestedBlock{
				Header: joinLines(strings.TrimSpace(s.src[start:s.pos])),
				Span:   Span{Start: start},
			}
			s.pos++

			children, err := s.parseBlock(depth + 1)
			if err != nil {
				return nil, err
			}
			block.Children = children
			block.Span.End = s.pos
			return block, nil
		}
	}

	return nil, s.errorf(len(s.src), s.src[start:], "unexpected end of input while parsing block header")
}

// scanDirective reads a statement at-rule such as @import through its
// semicolon. It returns nil without moving the cursor when a block opens first.
func (s *scanner) scanDirective() *Directive {
	var n nesting
	for i := s.pos; i < len(s.src); i++ {
		ch := s.src[i]
		if n.step(ch) {
			continue
		}
		switch ch {
		case ';':
			d := &Directive{
				Text: joinLines(strings.TrimSpace(s.src[s.pos:i])),
				Span: Span{Start: s.pos, End: i + 1},
			}
			s.pos = i + 1
			return d
		case '{', '}':
			return nil
		}
	}
	return nil
}

// scanSelectors reads a comma separated selector list and stops on the
// opening brace. It returns nil when a '}' or the end of input arrives
// with nothing pending.
func (s *scanner) scanSelectors() (*SelectorGroup, error) {
	var (
		g   = &SelectorGroup{Span: Span{Start: s.pos}}
		cur strings.Builder
		n   nesting
	)

	commit := func() {
		if name := strings.TrimSpace(cur.String()); name != "" {
			g.Selectors = append(g.Selectors, &Selector{Name: joinLines(name)})
		}
		cur.Reset()
	}

	for ; s.pos < len(s.src); s.pos++ {
		ch := s.src[s.pos]
		if n.step(ch) {
			cur.WriteByte(ch)
			continue
		}

		switch ch {
		case '{':
			commit()
			if len(g.Selectors) == 0 {
				return nil, s.errorf(s.pos, "{", "missing selector before '{'")
			}
			return g, nil
		case ',':
			commit()
		case '}':
			if pending := strings.TrimSpace(cur.String()); pending != "" {
				return nil, s.errorf(s.pos, pending, "unexpected '}' while parsing selectors")
			}
			return nil, nil
		default:
			cur.WriteByte(ch)
		}
	}

	if pending := strings.TrimSpace(cur.String()); pending != "" {
		return nil, s.errorf(len(s.src), pending, "unexpected end of input while parsing selectors")
	}
	return nil, nil
}

// scanPropertyName reads a property name through its colon. end is true
// when the declaration block closes instead. A stray semicolon yields a nil
// property and no error.
func (s *scanner) scanPropertyName() (p *Property, end bool, err error) {
	start := s.pos
	var name strings.Builder

	for ; s.pos < len(s.src); s.pos++ {
		ch := s.src[s.pos]
		switch ch {
		case ':':
			n := strings.TrimSpace(name.String())
			if n == "" {
				return nil, false, s.errorf(s.pos, ":", "missing property name")
			}
			s.pos++
			return &Property{Name: n, Span: Span{Start: start}}, false, nil
		case '}':
			if pending := strings.TrimSpace(name.String()); pending != "" {
				return nil, false, s.errorf(s.pos, pending, "incomplete property at end of block")
			}
			s.pos++
			return nil, true, nil
		case ';':
			if pending := strings.TrimSpace(name.String()); pending != "" {
				return nil, false, s.errorf(s.pos, pending, "property without value")
			}
			s.pos++
			return nil, false, nil
		default:
			name.WriteByte(ch)
		}
	}

	return nil, false, s.errorf(len(s.src), name.String(), "unexpected end of input while parsing property name")
}

// scanValue reads the value of p through ';' or '}' and reports whether
// the block closed. Quoted strings, parentheses and comments do not
// terminate the value.
func (s *scanner) scanValue(p *Property) (end bool, err error) {
	start := s.pos
	var n nesting

	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if n.step(ch) {
			s.pos++
			continue
		}

		switch {
		case ch == ';' || ch == '}':
			p.Value = joinLines(strings.TrimSpace(s.src[start:s.pos]))
			s.pos++
			p.Span.End = s.pos
			return ch == '}', nil
		case ch == '/' && strings.HasPrefix(s.src[s.pos:], "/*"):
			close := strings.Index(s.src[s.pos+2:], "*/")
			if close < 0 {
				return false, s.errorf(s.pos, s.src[s.pos:], "unterminated comment")
			}
			s.pos += close + 4
		default:
			s.pos++
		}
	}

	return false, s.errorf(len(s.src), p.Name+": "+s.src[start:], "unexpected end of input while parsing property value")
}

func (s *scanner) errorf(offset int, fragment, format string, args ...any) error {
	line, col := position(s.src, offset)
	return &SyntaxError{
		Msg:      fmt.Sprintf(format, args...),
		Fragment: excerpt(fragment),
		Offset:   offset,
		Line:     line,
		Column:   col,
	}
}

// nesting tracks quoted strings, escapes, parentheses and brackets while
// scanning text whose delimiters must be ignored inside them.
type nesting struct {
	quote   byte
	depth   int
	escaped bool
}

// step consumes ch and reports whether it belongs to a string, an escape
// or a parenthesized group.
func (n *nesting) step(ch byte) bool {
	if n.escaped {
		n.escaped = false
		return true
	}
	if ch == '\\' {
		n.escaped = true
		return true
	}
	if n.quote != 0 {
		if ch == n.quote {
			n.quote = 0
		}
		return true
	}

	switch ch {
	case '"', '\'':
		n.quote = ch
		return true
	case '(', '[':
		n.depth++
		return true
	case ')', ']':
		if n.depth > 0 {
			n.depth--
			return true
		}
	}
	return n.depth > 0
}

// joinLines folds whitespace runs containing a line break into a single
// space. Quoted strings are left untouched.
func joinLines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}

	var (
		b strings.Builder
		n nesting
	)
	for i := 0; i < len(s); i++ {
		if n.quote == 0 && !n.escaped && isSpace(s[i]) {
			j := i
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if run := s[i:j]; strings.ContainsAny(run, "\r\n") {
				b.WriteByte(' ')
			} else {
				b.WriteString(run)
			}
			i = j - 1
			continue
		}
		n.step(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// position converts a byte offset into a 1-based line and column.
func position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	col = utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return line, col
}

// excerpt shortens source text for error messages.
func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > 40 {
		return string([]rune(s)[:37]) + "..."
	}
	return s
}
