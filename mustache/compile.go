package mustache

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// whitespace is the set of characters trimmed from tag names.
const whitespace = " \t\r\n"

// Compile scans template text and returns its token sequence.
//
// The returned tokens cover the input with no gaps or overlaps. Delimiter
// changes take effect immediately for the remainder of the scan and are
// returned as [TokenDelimiters] tokens. An unterminated tag, a malformed
// delimiter change, or a tag with an empty name fails with [ErrMalformedTag].
func Compile(text string, opts ...Option) ([]Token, error) {
	cfg := makeConfig(opts...)

	c := &compiler{
		input: text,
		open:  cfg.open,
		close: cfg.close,
		line:  1,
		col:   1,
	}

	tokens, err := c.scan()
	if err != nil {
		return nil, err
	}

	cfg.logger.Trace("compile complete",
		slog.Int("source_bytes", len(text)),
		slog.Int("token_count", len(tokens)))

	return tokens, nil
}

// compiler holds the lexer state. It is a single linear pass over the input
// with mutable delimiters.
type compiler struct {
	input  string
	open   string
	close  string
	pos    int
	line   int
	col    int
	tokens []Token
}

// scan tokenizes the entire input.
func (c *compiler) scan() ([]Token, error) {
	for c.pos < len(c.input) {
		idx := strings.Index(c.input[c.pos:], c.open)
		if idx < 0 {
			c.emitText(len(c.input))

			break
		}

		if idx > 0 {
			c.emitText(c.pos + idx)
		}

		err := c.scanTag()
		if err != nil {
			return nil, err
		}
	}

	return c.tokens, nil
}

// emitText appends a text token covering input[pos:end].
func (c *compiler) emitText(end int) {
	c.emit(Token{Kind: TokenText}, end)
}

// emit completes tok with its raw text and position, appends it, and moves
// the cursor to end.
func (c *compiler) emit(tok Token, end int) {
	tok.Raw = c.input[c.pos:end]
	tok.Pos = c.position()
	c.tokens = append(c.tokens, tok)
	c.advanceTo(end)
}

// scanTag scans one tag starting at the open delimiter under the cursor.
func (c *compiler) scanTag() error {
	inner := c.pos + len(c.open)

	// Triple mustache: the close sequence is "}" followed by the delimiter.
	if strings.HasPrefix(c.input[inner:], "{") {
		closeSeq := "}" + c.close

		end := strings.Index(c.input[inner+1:], closeSeq)
		if end < 0 {
			return c.malformed("unterminated triple mustache")
		}

		content := c.input[inner+1 : inner+1+end]

		name := strings.Trim(content, whitespace)
		if name == "" {
			return c.malformed("empty tag name")
		}

		c.emit(
			Token{Kind: TokenUnescaped, Name: name},
			inner+1+end+len(closeSeq),
		)

		return nil
	}

	end := strings.Index(c.input[inner:], c.close)
	if end < 0 {
		return c.malformed("unterminated tag")
	}

	stop := inner + end + len(c.close)
	content := strings.TrimLeft(c.input[inner:inner+end], whitespace)

	if content == "" {
		return c.malformed("empty tag name")
	}

	var kind TokenKind

	switch content[0] {
	case '#':
		kind = TokenSectionOpen

	case '^':
		kind = TokenInvertedOpen

	case '/':
		kind = TokenSectionClose

	case '>':
		kind = TokenPartial

	case '&':
		kind = TokenUnescaped

	case '!':
		c.emit(
			Token{
				Kind: TokenComment,
				Name: strings.Trim(content[1:], whitespace),
			},
			stop,
		)

		return nil

	case '=':
		return c.scanDelimiters(content, stop)

	default:
		c.emit(
			Token{Kind: TokenVariable, Name: strings.Trim(content, whitespace)},
			stop,
		)

		return nil
	}

	name := strings.Trim(content[1:], whitespace)
	if name == "" {
		return c.malformed("empty tag name")
	}

	c.emit(Token{Kind: kind, Name: name}, stop)

	return nil
}

// scanDelimiters handles a delimiter change directive "=open close=".
// The new delimiters apply to everything after the directive.
func (c *compiler) scanDelimiters(content string, stop int) error {
	content = strings.TrimRight(content, whitespace)

	if len(content) < 2 || content[len(content)-1] != '=' {
		return c.malformed("delimiter change must end with '='")
	}

	fields := strings.Fields(content[1 : len(content)-1])
	if len(fields) != 2 {
		return c.malformed("delimiter change requires two delimiters")
	}

	if strings.Contains(fields[0], "=") || strings.Contains(fields[1], "=") {
		return c.malformed("delimiter must not contain '='")
	}

	c.emit(
		Token{Kind: TokenDelimiters, Open: fields[0], Close: fields[1]},
		stop,
	)

	c.open, c.close = fields[0], fields[1]

	return nil
}

// malformed returns an ErrMalformedTag located at the cursor.
func (c *compiler) malformed(reason string) error {
	return ErrMalformedTag.
		With(slog.String("reason", reason)).
		With(slog.String("open", c.open), slog.String("close", c.close)).
		WithPosition(c.position())
}

func (c *compiler) position() Position {
	return Position{
		Offset: c.pos,
		Line:   c.line,
		Column: c.col,
	}
}

// advanceTo moves the cursor to end, tracking line and column.
func (c *compiler) advanceTo(end int) {
	for c.pos < end {
		r, size := utf8.DecodeRuneInString(c.input[c.pos:])

		c.pos += size
		if r == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
}
