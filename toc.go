package cssfmt

import (
	"slices"
	"strconv"
	"strings"
)

// tocEntry is a selector comment listed in the table of contents.
type tocEntry struct {
	comment *Comment
	line    int // index of the comment's first line in the formatted lines
	key     string
}

// TableOfContents returns a comment block indexing the heading comments of
// lines. A heading is a selector comment opening with two or more stars;
// the more stars, the lower its rank, rank 1 being the top level. Entry
// comments are stamped with their TableRank and TableIndent.
func TableOfContents(lines Lines, opts TOCOptions) Lines {
	entries := tocEntries(lines)

	ranks := rankKeys(entries)

	out := Lines{
		NewLine(0, tocText("/*")),
		NewLine(1, tocText("* TABLE OF CONTENTS")),
		NewLine(1, tocText("*")),
	}

	var items Lines
	for _, e := range entries {
		label := headingLabel(e.comment.Text)
		if label == "" {
			continue
		}

		rank := ranks[e.key]
		indent := (rank - 1) * opts.DepthIndent
		e.comment.TableRank = rank
		e.comment.TableIndent = indent

		l := NewLine(1, tocText("*"+Spaces(indent)+"- "+label))
		l.Entry = e.comment
		l.TableIndent = indent
		items = append(items, l)
	}
	out = append(out, items...)

	out = append(out,
		NewLine(1, tocText("*")),
		NewLine(1, tocText("*/")),
		NewLine(0),
		NewLine(0),
	)

	if opts.ShowLineNumbers {
		lineIndex := make(map[int]int, len(entries))
		for _, e := range entries {
			lineIndex[e.comment.ID] = e.line
		}
		for _, l := range items {
			n := len(out) + lineIndex[l.Entry.ID] + 1
			rest := strings.TrimPrefix(l.String(), "*")
			l.Fragments = []Fragment{tocText("*" + MinLeft(strconv.Itoa(n), 5, " ") + rest)}
		}
	}

	return out
}

// BuildTOC returns the table of contents followed by lines. The input lines
// are copied, not modified. With IndentSections each line is indented by
// the TableIndent of the last heading at or above it.
func BuildTOC(lines Lines, opts TOCOptions) Lines {
	out := TableOfContents(lines, opts)

	indent := 0
	for _, l := range lines {
		cp := *l
		if opts.IndentSections {
			if c := headingOf(l); c != nil {
				indent = c.TableIndent
			}
			cp.Indent += indent
			cp.TableIndent = indent
		}
		out = append(out, &cp)
	}
	return out
}

// tocEntries collects the first line of every heading comment.
func tocEntries(lines Lines) []tocEntry {
	var entries []tocEntry
	for i, l := range lines {
		if len(l.Fragments) == 0 {
			continue
		}
		f := l.Fragments[0]
		if f.Kind != FragmentComment || f.Comment == nil || f.Part != 0 || f.Comment.Kind != SelectorComment {
			continue
		}
		key := depthKey(f.Comment.Text)
		if len(key) < 2 {
			continue
		}
		entries = append(entries, tocEntry{comment: f.Comment, line: i, key: key})
	}
	return entries
}

// rankKeys assigns dense ranks to the distinct depth keys, in descending
// string order.
func rankKeys(entries []tocEntry) map[string]int {
	var keys []string
	for _, e := range entries {
		if !slices.Contains(keys, e.key) {
			keys = append(keys, e.key)
		}
	}
	slices.Sort(keys)
	slices.Reverse(keys)

	ranks := make(map[string]int, len(keys))
	for i, k := range keys {
		ranks[k] = i + 1
	}
	return ranks
}

// depthKey returns the run of stars a comment opens with, including the
// star of "/*".
func depthKey(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	rest := text[1:]
	n := len(rest) - len(strings.TrimLeft(rest, "*"))
	return rest[:n]
}

// headingLabel extracts the single line title of a heading comment.
func headingLabel(text string) string {
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")

	var b strings.Builder
	leading := true
loop:
	for _, ch := range text {
		switch {
		case ch == '\r' || ch == '\n':
			break loop
		case ch == '\t':
			b.WriteString("    ")
		case ch == '*' && leading:
			continue
		default:
			b.WriteRune(ch)
		}
		leading = false
	}

	label := strings.TrimSpace(b.String())
	label = strings.TrimRight(label, "*")
	return strings.TrimSpace(label)
}

// headingOf returns the table entry comment a line starts with, if any.
func headingOf(l *Line) *Comment {
	for _, f := range l.Fragments {
		if f.Kind == FragmentComment && f.Comment != nil && f.Comment.TableRank > 0 {
			return f.Comment
		}
	}
	return nil
}

func tocText(s string) Fragment {
	return Fragment{Kind: FragmentComment, Text: s}
}
