package mustache

import (
	"strconv"
	"strings"
)

// Position identifies a location in template source.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number in runes, starting at 1
}

// String returns the position as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// TokenKind indicates the kind of a [Token].
type TokenKind int

const (
	// TokenText is a run of literal text.
	TokenText TokenKind = iota

	// TokenVariable is an escaped variable tag: {{name}}.
	TokenVariable

	// TokenUnescaped is an unescaped variable tag: {{{name}}} or {{&name}}.
	TokenUnescaped

	// TokenSectionOpen opens a section: {{#name}}.
	TokenSectionOpen

	// TokenInvertedOpen opens an inverted section: {{^name}}.
	TokenInvertedOpen

	// TokenSectionClose closes a section: {{/name}}.
	TokenSectionClose

	// TokenPartial includes a partial: {{>name}}.
	TokenPartial

	// TokenComment is a comment: {{! ... }}.
	TokenComment

	// TokenDelimiters changes the tag delimiters: {{=<% %>=}}.
	TokenDelimiters
)

// String returns a string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "Text"

	case TokenVariable:
		return "Variable"

	case TokenUnescaped:
		return "UnescapedVariable"

	case TokenSectionOpen:
		return "SectionOpen"

	case TokenInvertedOpen:
		return "InvertedSectionOpen"

	case TokenSectionClose:
		return "SectionClose"

	case TokenPartial:
		return "Partial"

	case TokenComment:
		return "Comment"

	case TokenDelimiters:
		return "DelimiterChange"

	default:
		return "Unknown"
	}
}

// Token is a single lexical element of a template: either a run of literal
// text or one tag occurrence.
type Token struct {
	Kind TokenKind
	// Name is the trimmed tag name. For comments it holds the trimmed comment
	// text; for text and delimiter changes it is empty.
	Name string
	// Raw is the exact slice of source text covered by the token, including
	// delimiters. Concatenating Raw of every token reproduces the source.
	Raw string
	// Pos is the location of the first byte of Raw.
	Pos Position
	// Open and Close hold the new delimiters of a [TokenDelimiters] token.
	Open, Close string
}

// String returns a compact, single-line description of the token.
func (t Token) String() string {
	var sb strings.Builder

	sb.WriteString(t.Pos.String())
	sb.WriteByte(' ')
	sb.WriteString(t.Kind.String())

	switch t.Kind {
	case TokenText:
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(t.Raw))

	case TokenDelimiters:
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(t.Open))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(t.Close))

	default:
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(t.Name))
	}

	return sb.String()
}
