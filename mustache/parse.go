package mustache

import (
	"log/slog"
)

// Parse builds the node tree for a token sequence returned by [Compile].
//
// Every section opened must be closed by a tag with the same name. A close
// tag with no open section fails with [ErrUnmatchedSectionClose], a close tag
// naming a different section fails with [ErrSectionNameMismatch], and input
// ending inside a section fails with [ErrUnclosedSection]. Comments and
// delimiter changes produce no nodes.
func Parse(tokens []Token, opts ...Option) ([]*Node, error) {
	cfg := makeConfig(opts...)

	p := new(parser)

	for _, tok := range tokens {
		err := p.consume(tok)
		if err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 0 {
		open := p.stack[len(p.stack)-1]

		return nil, ErrUnclosedSection.
			With(slog.String("name", open.Name)).
			WithPosition(open.Pos)
	}

	cfg.logger.Trace("parse complete",
		slog.Int("token_count", len(tokens)),
		slog.Int("node_count", len(p.root)))

	return p.root, nil
}

// parser holds the tree builder state. Each element of stack is an open
// section accumulating its children.
type parser struct {
	root  []*Node
	stack []*Node
}

// appendNode adds n to the innermost open section, or to the root.
func (p *parser) appendNode(n *Node) {
	if len(p.stack) == 0 {
		p.root = append(p.root, n)

		return
	}

	top := p.stack[len(p.stack)-1]
	top.Children = append(top.Children, n)
}

// consume applies a single token to the tree.
func (p *parser) consume(tok Token) error {
	switch tok.Kind {
	case TokenText:
		p.appendNode(&Node{Kind: NodeText, Text: tok.Raw, Pos: tok.Pos})

	case TokenVariable, TokenUnescaped:
		p.appendNode(&Node{
			Kind:   NodeVariable,
			Name:   tok.Name,
			Escape: tok.Kind == TokenVariable,
			Pos:    tok.Pos,
		})

	case TokenSectionOpen, TokenInvertedOpen:
		p.stack = append(p.stack, &Node{
			Kind:     NodeSection,
			Name:     tok.Name,
			Inverted: tok.Kind == TokenInvertedOpen,
			Pos:      tok.Pos,
		})

	case TokenSectionClose:
		return p.closeSection(tok)

	case TokenPartial:
		p.appendNode(&Node{Kind: NodePartial, Name: tok.Name, Pos: tok.Pos})

	case TokenComment, TokenDelimiters:
		// No node.

	default:
		return ErrMalformedTag.
			With(slog.String("reason", "unknown token kind")).
			WithPosition(tok.Pos)
	}

	return nil
}

// closeSection pops the innermost open section and attaches it to its
// parent.
func (p *parser) closeSection(tok Token) error {
	if len(p.stack) == 0 {
		return ErrUnmatchedSectionClose.
			With(slog.String("name", tok.Name)).
			WithPosition(tok.Pos)
	}

	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if top.Name != tok.Name {
		return ErrSectionNameMismatch.
			With(
				slog.String("expected", top.Name),
				slog.String("found", tok.Name),
			).
			WithPosition(tok.Pos)
	}

	p.appendNode(top)

	return nil
}
