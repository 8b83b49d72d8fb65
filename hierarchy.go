package cssfmt

import "strings"

// IndentHierarchy stamps every SelectorGroup in nodes with an Indent that
// reflects which earlier rule it refines. A group whose first selector
// extends the components of an earlier group's first selector (".nav" then
// ".nav li" or ".nav:hover") is indented one level, of spaces columns,
// deeper than the longest such match. Nested blocks are processed with
// their own scope.
func IndentHierarchy(nodes []Node, spaces int) {
	if spaces <= 0 {
		spaces = 4
	}

	levels := make(map[string]int)
	for _, n := range nodes {
		switch n := n.(type) {
		case *NestedBlock:
			IndentHierarchy(n.Children, spaces)
		case *SelectorGroup:
			if len(n.Selectors) == 0 {
				continue
			}
			parts := SelectorComponents(n.Selectors[0].Name)

			level := 0
			for i := len(parts) - 1; i > 0; i-- {
				if l, ok := levels[strings.Join(parts[:i], ",")]; ok {
					level = l
					break
				}
			}
			level++

			levels[strings.Join(parts, ",")] = level
			n.Indent = (level - 1) * spaces
		}
	}
}
