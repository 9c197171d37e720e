package traits

import (
	"strings"

	"traitlin/internal/defs"
)

// Token kinds produced by the scanner.
const (
	tokEOF = iota
	tokIdent
	tokEquals
	tokOpenBrace
	tokCloseBrace
)

// token is a single lexical unit with its source position.
type token struct {
	kind int
	text string
	line int
	col  int
}

// describe renders a token for expected-vs-found messages.
func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of file"
	}
	return "\"" + t.text + "\""
}

// scanner walks the source text tracking line and column. Comments run
// from '#' to end of line.
type scanner struct {
	src  string
	pos  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

// advance consumes one byte.
func (s *scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

// skipTrivia consumes whitespace and comments.
func (s *scanner) skipTrivia() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

// isIdentChar reports whether c may appear in an identifier or scalar
// value token. Clausewitz identifiers use word characters; scalars may
// also carry dots and minus signs (numbers, decimals).
func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '\'':
		return true
	}
	return false
}

// next scans the next token.
func (s *scanner) next() token {
	s.skipTrivia()
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, line: s.line, col: s.col}
	}
	line, col := s.line, s.col
	c := s.src[s.pos]
	switch c {
	case '=':
		s.advance()
		return token{kind: tokEquals, text: "=", line: line, col: col}
	case '{':
		s.advance()
		return token{kind: tokOpenBrace, text: "{", line: line, col: col}
	case '}':
		s.advance()
		return token{kind: tokCloseBrace, text: "}", line: line, col: col}
	case '"':
		// Quoted scalar, quotes preserved. The engine has no escapes.
		start := s.pos
		s.advance()
		for s.pos < len(s.src) && s.src[s.pos] != '"' && s.src[s.pos] != '\n' {
			s.advance()
		}
		if s.pos < len(s.src) && s.src[s.pos] == '"' {
			s.advance()
		}
		return token{kind: tokIdent, text: s.src[start:s.pos], line: line, col: col}
	}
	if isIdentChar(c) {
		start := s.pos
		for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
			s.advance()
		}
		return token{kind: tokIdent, text: s.src[start:s.pos], line: line, col: col}
	}
	s.advance()
	return token{kind: tokIdent, text: string(c), line: line, col: col}
}

// parser is a recursive-descent parser over the token stream with one
// token of lookahead.
type parser struct {
	s      *scanner
	peeked *token
}

func (p *parser) next() token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	return p.s.next()
}

func (p *parser) peek() token {
	if p.peeked == nil {
		t := p.s.next()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *parser) expect(kind int, expected string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return token{}, &ParseError{Line: t.line, Col: t.col, Expected: expected, Found: t.describe()}
	}
	return t, nil
}

// Parse parses the raw decoded text of a traits file. It refuses input
// that starts with the generation marker, so already linearised output is
// never expanded a second time. The returned document preserves source
// order in both sections.
//
// Parse is purely structural; call Document.CheckLinearisable for the
// degenerate-input check.
func Parse(text string) (*Document, error) {
	if strings.HasPrefix(text, defs.GenerationMarker) {
		return nil, ErrAlreadyLinearised
	}

	p := &parser{s: newScanner(text)}
	doc := &Document{}
	seen := map[string]bool{}

	for {
		t := p.next()
		if t.kind == tokEOF {
			break
		}
		if t.kind != tokIdent || (t.text != "personality" && t.text != "background") {
			return nil, &ParseError{
				Line: t.line, Col: t.col,
				Expected: "section name \"personality\" or \"background\"",
				Found:    t.describe(),
			}
		}
		if seen[t.text] {
			return nil, &ParseError{
				Line: t.line, Col: t.col,
				Expected: "a single " + t.text + " section",
				Found:    "a second \"" + t.text + "\" section",
			}
		}
		seen[t.text] = true

		ts, err := p.parseSection()
		if err != nil {
			return nil, err
		}
		if t.text == "personality" {
			doc.Personalities = ts
		} else {
			doc.Backgrounds = ts
		}
	}

	for _, name := range []string{"personality", "background"} {
		if !seen[name] {
			return nil, &ParseError{
				Line: p.s.line, Col: p.s.col,
				Expected: "a \"" + name + "\" section",
				Found:    "end of file",
			}
		}
	}
	return doc, nil
}

// parseSection parses "= { trait... }" after a section name.
func (p *parser) parseSection() ([]Trait, error) {
	if _, err := p.expect(tokEquals, "\"=\""); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokOpenBrace, "\"{\""); err != nil {
		return nil, err
	}

	var ts []Trait
	seen := map[string]bool{}
	for {
		t := p.peek()
		if t.kind == tokCloseBrace {
			p.next()
			return ts, nil
		}
		tr, err := p.parseTrait()
		if err != nil {
			return nil, err
		}
		if seen[tr.Name] {
			return nil, &ParseError{
				Line: t.line, Col: t.col,
				Expected: "a unique trait name",
				Found:    "a second \"" + tr.Name + "\" trait",
			}
		}
		seen[tr.Name] = true
		ts = append(ts, tr)
	}
}

// parseTrait parses one "name = { attribute... }" block.
func (p *parser) parseTrait() (Trait, error) {
	name, err := p.expect(tokIdent, "trait name")
	if err != nil {
		return Trait{}, err
	}
	if _, err := p.expect(tokEquals, "\"=\""); err != nil {
		return Trait{}, err
	}
	if _, err := p.expect(tokOpenBrace, "\"{\""); err != nil {
		return Trait{}, err
	}

	tr := Trait{Name: name.text}
	for {
		t := p.next()
		if t.kind == tokCloseBrace {
			return tr, nil
		}
		if t.kind != tokIdent {
			return Trait{}, &ParseError{
				Line: t.line, Col: t.col,
				Expected: "attribute name or \"}\"",
				Found:    t.describe(),
			}
		}
		if _, err := p.expect(tokEquals, "\"=\""); err != nil {
			return Trait{}, err
		}
		value, err := p.parseValue()
		if err != nil {
			return Trait{}, err
		}
		tr.Attributes = append(tr.Attributes, Attribute{Name: t.text, Value: value})
	}
}

// parseValue parses an attribute value: a scalar token, or a brace block
// captured as raw text.
func (p *parser) parseValue() (string, error) {
	t := p.peek()
	switch t.kind {
	case tokOpenBrace:
		// The lookahead already consumed the opening brace.
		p.peeked = nil
		return p.captureBlockAfterOpen(t)
	case tokIdent:
		p.next()
		return t.text, nil
	default:
		p.next()
		return "", &ParseError{
			Line: t.line, Col: t.col,
			Expected: "attribute value",
			Found:    t.describe(),
		}
	}
}

// captureBlockAfterOpen captures a raw brace block whose opening brace was
// already consumed by the lookahead. Braces inside comments and quoted
// strings do not count towards the nesting depth, matching the scanner.
func (p *parser) captureBlockAfterOpen(open token) (string, error) {
	s := p.s
	start := s.pos
	depth := 1
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.advance()
			}
			continue
		case '"':
			s.advance()
			for s.pos < len(s.src) && s.src[s.pos] != '"' && s.src[s.pos] != '\n' {
				s.advance()
			}
			if s.pos < len(s.src) && s.src[s.pos] == '"' {
				s.advance()
			}
			continue
		case '{':
			depth++
		case '}':
			depth--
		}
		s.advance()
		if depth == 0 {
			return "{" + s.src[start:s.pos], nil
		}
	}
	return "", &ParseError{Line: open.line, Col: open.col, Expected: "\"}\"", Found: "end of file"}
}
