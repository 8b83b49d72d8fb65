package cssfmt

import (
	"cmp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type selectorToken struct {
	tt   css.TokenType
	text string
}

// lexSelector tokenizes a selector with the CSS lexer. Escaped characters
// stay part of the identifier they belong to.
func lexSelector(sel string) []selectorToken {
	lexer := css.NewLexer(parse.NewInputString(sel))

	var tokens []selectorToken
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return tokens
		}
		tokens = append(tokens, selectorToken{tt: tt, text: string(text)})
	}
}

func isCombinator(tok selectorToken) bool {
	if tok.tt == css.WhitespaceToken {
		return true
	}
	return tok.tt == css.DelimToken && (tok.text == ">" || tok.text == "+" || tok.text == "~")
}

// SelectorComponents splits a selector into its simple parts without
// combinators: "ul.nav > li:hover" yields ["ul", ".nav", "li", ":hover"].
// Attribute selectors and functional pseudo-classes stay whole.
func SelectorComponents(sel string) []string {
	var (
		parts []string
		cur   strings.Builder
		depth int
	)

	flush := func() {
		if s := cur.String(); s != "" && s != ":" {
			parts = append(parts, s)
		}
		cur.Reset()
	}

	for _, tok := range lexSelector(sel) {
		if depth > 0 {
			switch tok.tt {
			case css.LeftBracketToken, css.LeftParenthesisToken, css.FunctionToken:
				depth++
			case css.RightBracketToken, css.RightParenthesisToken:
				depth--
			}
			cur.WriteString(tok.text)
			continue
		}

		switch {
		case isCombinator(tok):
			flush()
			continue
		case tok.tt == css.DelimToken && tok.text == ".", tok.tt == css.ColonToken:
			flush()
		case tok.tt == css.LeftBracketToken:
			flush()
			depth++
		case tok.tt == css.FunctionToken, tok.tt == css.LeftParenthesisToken:
			depth++
		}
		cur.WriteString(tok.text)
	}
	flush()

	return parts
}

// Specificity counts the id, class-like and type-like parts of a selector.
type Specificity struct {
	IDs     int
	Classes int // classes, attributes and pseudo-classes
	Types   int // type selectors and pseudo-elements
}

// Compare orders specificities lexicographically by IDs, Classes and Types.
func (s Specificity) Compare(other Specificity) int {
	if c := cmp.Compare(s.IDs, other.IDs); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Classes, other.Classes); c != 0 {
		return c
	}
	return cmp.Compare(s.Types, other.Types)
}

var legacyPseudoElements = map[string]bool{
	"before":       true,
	"after":        true,
	"first-line":   true,
	"first-letter": true,
}

// SelectorSpecificity computes the specificity of a single selector.
// Arguments of functional pseudo-classes are not counted.
func SelectorSpecificity(sel string) Specificity {
	var (
		spec   Specificity
		depth  int
		colons int
		prev   selectorToken
	)

	for _, tok := range lexSelector(sel) {
		if depth > 0 {
			switch tok.tt {
			case css.LeftBracketToken, css.LeftParenthesisToken, css.FunctionToken:
				depth++
			case css.RightBracketToken, css.RightParenthesisToken:
				depth--
			}
			continue
		}

		switch tok.tt {
		case css.HashToken:
			spec.IDs++
		case css.LeftBracketToken:
			spec.Classes++
			depth++
		case css.ColonToken:
			colons++
			prev = tok
			continue
		case css.IdentToken, css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(tok.text, "("))
			switch {
			case colons >= 2, colons == 1 && legacyPseudoElements[name]:
				spec.Types++
			case colons == 1:
				spec.Classes++
			case prev.tt == css.DelimToken && prev.text == ".":
				spec.Classes++
			default:
				spec.Types++
			}
			if tok.tt == css.FunctionToken {
				depth++
			}
		}
		colons = 0
		prev = tok
	}

	return spec
}

// CompareSpecificity compares the specificity of two selectors and returns
// -1, 0 or +1.
func CompareSpecificity(a, b *Selector) int {
	return SelectorSpecificity(a.Name).Compare(SelectorSpecificity(b.Name))
}
