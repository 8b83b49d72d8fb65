package cssfmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectorGroup(t *testing.T) {
	nodes, err := Parse("a, b.c { color: red; margin: 0 auto }")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	g, ok := nodes[0].(*SelectorGroup)
	require.True(t, ok)
	require.Len(t, g.Selectors, 2)
	assert.Equal(t, "a", g.Selectors[0].Name)
	assert.Equal(t, "b.c", g.Selectors[1].Name)

	props := g.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "color", props[0].Name)
	assert.Equal(t, "red", props[0].Value)
	assert.Equal(t, "margin", props[1].Name)
	assert.Equal(t, "0 auto", props[1].Value)
}

func TestParseSpans(t *testing.T) {
	src := "a { b: c; }"
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	g := nodes[0].(*SelectorGroup)
	assert.Equal(t, Span{Start: 0, End: len(src)}, g.Pos())

	p := g.Properties()[0]
	assert.Equal(t, 4, p.Span.Start)
	assert.Equal(t, 9, p.Span.End)
	assert.GreaterOrEqual(t, p.Span.End, p.Span.Start)
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "quoted semicolon and brace",
			src:  `a { content: "a; b}c"; }`,
			want: `"a; b}c"`,
		},
		{
			name: "single quotes with escaped quote",
			src:  `a { content: 'it\'s; ok' }`,
			want: `'it\'s; ok'`,
		},
		{
			name: "url with semicolon",
			src:  "a { background: url(data:image/png;base64,AAA); }",
			want: "url(data:image/png;base64,AAA)",
		},
		{
			name: "comment inside value",
			src:  "a { color: red /* x; } */ ; }",
			want: "red /* x; } */",
		},
		{
			name: "value spanning lines",
			src:  "a {\n  grid-template-columns:\n    1fr\n    2fr;\n}",
			want: "1fr 2fr",
		},
		{
			name: "value ended by closing brace",
			src:  "a { color: blue}",
			want: "blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, nodes, 1)

			props := nodes[0].(*SelectorGroup).Properties()
			require.Len(t, props, 1)
			require.Equal(t, tt.want, props[0].Value)
		})
	}
}

func TestParseSelectorsKeepFunctionalArguments(t *testing.T) {
	nodes, err := Parse(`a:is(.x, .y), input[value="1,2"], b {}`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	g := nodes[0].(*SelectorGroup)
	require.Len(t, g.Selectors, 3)
	assert.Equal(t, "a:is(.x, .y)", g.Selectors[0].Name)
	assert.Equal(t, `input[value="1,2"]`, g.Selectors[1].Name)
	assert.Equal(t, "b", g.Selectors[2].Name)
}

func TestParseNestedBlock(t *testing.T) {
	nodes, err := Parse("@media x {\n a { b: c; }\n}\nd { e: f }")
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	block, ok := nodes[0].(*NestedBlock)
	require.True(t, ok)
	assert.Equal(t, "@media x", block.Header)
	require.Len(t, block.Children, 1)

	child, ok := block.Children[0].(*SelectorGroup)
	require.True(t, ok)
	assert.Equal(t, "a", child.Selectors[0].Name)

	next, ok := nodes[1].(*SelectorGroup)
	require.True(t, ok)
	assert.Equal(t, "d", next.Selectors[0].Name)
	assert.GreaterOrEqual(t, next.Span.Start, block.Span.End)
}

func TestParseCustomKeywords(t *testing.T) {
	nodes, err := NewParser("@supports", "@media").Parse("@supports (display: grid) { a { b: c } }")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	block, ok := nodes[0].(*NestedBlock)
	require.True(t, ok)
	assert.Equal(t, "@supports (display: grid)", block.Header)
	assert.Len(t, block.Children, 1)
}

func TestParseDirectives(t *testing.T) {
	nodes, err := Parse("/* deps */\n@import url(\"x;y.css\");\n@font-face { font-family: x; }")
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	d, ok := nodes[1].(*Directive)
	require.True(t, ok)
	assert.Equal(t, `@import url("x;y.css")`, d.Text)
	require.Len(t, d.Comments, 1)
	assert.Equal(t, "/* deps */", d.Comments[0].Text)

	// At-rules with a block that are not keywords parse as selector groups.
	g, ok := nodes[2].(*SelectorGroup)
	require.True(t, ok)
	assert.Equal(t, "@font-face", g.Selectors[0].Name)
}

func TestParseComments(t *testing.T) {
	src := "/* sel */\na {\n  /* prop */\n  color: red; /* inline */\n  margin: 0; /* one */ /* two */\n  /* last */\n}"
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	sel, ok := nodes[0].(*Comment)
	require.True(t, ok)
	assert.Equal(t, SelectorComment, sel.Kind)
	assert.Equal(t, 1, sel.ID)

	g := nodes[1].(*SelectorGroup)
	require.Equal(t, []*Comment{sel}, g.Comments)
	require.Len(t, g.Decls, 5)

	prop, ok := g.Decls[0].(*Comment)
	require.True(t, ok)
	assert.Equal(t, PropertyComment, prop.Kind)
	assert.Equal(t, "/* prop */", prop.Text)

	color := g.Decls[1].(*Property)
	require.NotNil(t, color.Comment)
	assert.Equal(t, InlinePropertyComment, color.Comment.Kind)
	assert.Equal(t, "/* inline */", color.Comment.Text)

	margin := g.Decls[2].(*Property)
	require.NotNil(t, margin.Comment)
	assert.Equal(t, "/* one */", margin.Comment.Text)

	two := g.Decls[3].(*Comment)
	assert.Equal(t, PropertyComment, two.Kind)
	assert.Equal(t, "/* two */", two.Text)

	last := g.Decls[4].(*Comment)
	assert.Equal(t, PropertyComment, last.Kind)

	ids := []int{sel.ID, prop.ID, color.Comment.ID, margin.Comment.ID, two.ID, last.ID}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids)
}

func TestParseCommentNormalizesLineEndings(t *testing.T) {
	nodes, err := Parse("/**\r\n * Title\r\n */\r\na {}")
	require.NoError(t, err)

	c := nodes[0].(*Comment)
	assert.Equal(t, "/**\n * Title\n */", c.Raw)
	assert.Equal(t, []string{"/**", "* Title", "*/"}, c.Lines())
}

func TestParseStraySemicolons(t *testing.T) {
	nodes, err := Parse("a { ; color: red;; }")
	require.NoError(t, err)

	props := nodes[0].(*SelectorGroup).Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "red", props[0].Value)
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "  \n\t"} {
		nodes, err := Parse(src)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"truncated declaration", "a { color: red", "unexpected end of input while parsing property value"},
		{"truncated block", "a {", "unexpected end of input in declaration block"},
		{"slash without comment", "/ a {}", "illegal character '/'"},
		{"unterminated comment", "a {} /* open", "unterminated comment"},
		{"pending selectors", "a, b", "unexpected end of input while parsing selectors"},
		{"stray closing brace", "a {}\n}", "unexpected '}' outside of a block"},
		{"missing selector", "{ color: red }", "missing selector before '{'"},
		{"property without value at end", "a { color }", "incomplete property at end of block"},
		{"property without value", "a { color; }", "property without value"},
		{"missing property name", "a { : red }", "missing property name"},
		{"unclosed nested block", "@media x { a {}", "unexpected end of input in nested block"},
		{"unclosed block header", "@media x", "unexpected end of input while parsing block header"},
		{"brace after selector text", "@media x { a }", "unexpected '}' while parsing selectors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Parse(tt.src)
			require.Error(t, err)
			require.Nil(t, nodes)
			require.True(t, errors.Is(err, ErrSyntax))

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			require.Equal(t, tt.wantMsg, syntaxErr.Msg)
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("a {\n  color: red;\n}\n}")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 4, syntaxErr.Line)
	assert.Equal(t, 1, syntaxErr.Column)
	assert.Equal(t, 20, syntaxErr.Offset)
	assert.Equal(t, "}", syntaxErr.Fragment)
	assert.Equal(t, `4:1: unexpected '}' outside of a block: "}"`, syntaxErr.Error())
}
