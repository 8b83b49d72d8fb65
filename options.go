package cssfmt

// FormatOptions controls the layout produced by the Formatter.
// Start from DefaultFormatOptions and override individual fields.
type FormatOptions struct {
	Indent    int             `koanf:"indent" json:"indent"`
	Selectors SelectorOptions `koanf:"selectors" json:"selectors"`
	Braces    BraceOptions    `koanf:"braces" json:"braces"`
	Property  PropertyOptions `koanf:"property" json:"property"`
	Comments  CommentOptions  `koanf:"comments" json:"comments"`
}

// SelectorOptions controls selector lists and the spacing between rules.
type SelectorOptions struct {
	// NewLine starts every rule on a fresh line.
	NewLine bool `koanf:"new-line" json:"new-line"`
	// LinesBefore is the number of blank lines between rules.
	LinesBefore int `koanf:"lines-before" json:"lines-before"`
	// LinesBeforeComment replaces LinesBefore for a rule that follows a comment.
	LinesBeforeComment int `koanf:"lines-before-comment" json:"lines-before-comment"`
	// MaxLength wraps selector lists longer than this; 0 disables wrapping.
	MaxLength         int  `koanf:"max-length" json:"max-length"`
	ForcePerLine      bool `koanf:"force-per-line" json:"force-per-line"`
	CombinatedPerLine bool `koanf:"combinated-per-line" json:"combinated-per-line"`
	// LinesBeforeMulti is the minimum gap before nested blocks and rules
	// with more than one selector.
	LinesBeforeMulti int `koanf:"lines-before-multi" json:"lines-before-multi"`
	Multispace       int `koanf:"multispace" json:"multispace"`
	// Hierarchy indents rules under the rules whose selector they extend.
	Hierarchy bool `koanf:"hierarchy" json:"hierarchy"`
}

// BraceOptions controls placement and padding of braces.
type BraceOptions struct {
	OpenNewLine      bool `koanf:"open-new-line" json:"open-new-line"`
	OpenIndent       int  `koanf:"open-indent" json:"open-indent"`
	OpenIndentAfter  int  `koanf:"open-indent-after" json:"open-indent-after"`
	CloseNewLine     bool `koanf:"close-new-line" json:"close-new-line"`
	CloseIndent      int  `koanf:"close-indent" json:"close-indent"`
	CloseIndentAfter int  `koanf:"close-indent-after" json:"close-indent-after"`
}

// PropertyOptions controls declarations.
type PropertyOptions struct {
	NewLine      bool `koanf:"new-line" json:"new-line"`
	SpaceBetween int  `koanf:"space-between" json:"space-between"`
	// CloseLast terminates the last declaration of a block with ';'.
	CloseLast   bool `koanf:"close-last" json:"close-last"`
	IndentAfter int  `koanf:"indent-after" json:"indent-after"`
}

// CommentOptions controls which comments are rendered and their spacing.
type CommentOptions struct {
	Render               bool `koanf:"render" json:"render"`
	RenderProperty       bool `koanf:"render-property" json:"render-property"`
	RenderPropertyInline bool `koanf:"render-property-inline" json:"render-property-inline"`
	LinesBefore          int  `koanf:"lines-before" json:"lines-before"`
	LinesAfter           int  `koanf:"lines-after" json:"lines-after"`
	InlineSpace          int  `koanf:"inline-space" json:"inline-space"`
}

// DefaultFormatOptions returns the default layout.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Indent: 4,
		Selectors: SelectorOptions{
			NewLine:           true,
			MaxLength:         90,
			CombinatedPerLine: true,
			Multispace:        1,
		},
		Braces: BraceOptions{
			OpenIndent:   1,
			CloseNewLine: true,
		},
		Property: PropertyOptions{
			NewLine:      true,
			SpaceBetween: 1,
			CloseLast:    true,
		},
		Comments: CommentOptions{
			Render:               true,
			RenderProperty:       true,
			RenderPropertyInline: true,
			LinesBefore:          2,
			InlineSpace:          1,
		},
	}
}

// TOCOptions controls the table of contents.
type TOCOptions struct {
	ShowLineNumbers bool `koanf:"line-numbers" json:"line-numbers"`
	// IndentSections indents the lines following an entry by the entry's depth.
	IndentSections bool `koanf:"indent-sections" json:"indent-sections"`
	DepthIndent    int  `koanf:"depth-indent" json:"depth-indent"`
}

// DefaultTOCOptions returns the default table of contents layout.
func DefaultTOCOptions() TOCOptions {
	return TOCOptions{DepthIndent: 4}
}
