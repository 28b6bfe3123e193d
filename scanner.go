package rpn

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EOF is returned by the cursor at the end of the text
const EOF rune = -1

// cursor is a rune reader with a two rune lookahead
type cursor struct {
	str  string
	look [2]rune
}

func newCursor(str string) *cursor {
	c := &cursor{str: str}
	c.look[0] = c.decode()
	c.look[1] = c.decode()
	return c
}

func (c *cursor) decode() rune {
	if len(c.str) == 0 {
		return EOF
	}
	r, size := utf8.DecodeRuneInString(c.str)
	c.str = c.str[size:]
	return r
}

// peek returns the rune at the given offset (0 or 1) without consuming it
func (c *cursor) peek(offset int) rune {
	return c.look[offset]
}

func (c *cursor) next() rune {
	r := c.look[0]
	c.look[0] = c.look[1]
	c.look[1] = c.decode()
	return r
}

// Scanner converts source text to tokens.
// A Scanner is used for a single text only.
type Scanner struct {
	text   *cursor
	lexeme strings.Builder
	line   Line
}

// NewScanner creates a scanner for the given source text
func NewScanner(source string) *Scanner {
	return &Scanner{text: newCursor(source), line: 1}
}

// Scan returns all tokens of the given source text.
// If an error occurs, no tokens are returned.
func Scan(source string) (Tokens, error) {
	return NewScanner(source).ScanTokens()
}

// Line returns the line the scanner has reached
func (s *Scanner) Line() Line {
	return s.line
}

// ScanTokens scans the remaining text.
func (s *Scanner) ScanTokens() (Tokens, error) {
	var tokens Tokens
	for {
		s.skipWhitespace()
		s.lexeme.Reset()
		c := s.next()
		var t Token
		switch {
		case c == EOF:
			return tokens, nil
		case c == '(':
			t = LeftParen
		case c == ')':
			t = RightParen
		case c == ',':
			t = Comma
		case c == '+':
			t = Op(Plus)
		case c == '-':
			t = Op(Minus)
		case c == '*':
			t = Op(Multiply)
		case c == '/':
			t = Op(Divide)
		case c == '^':
			t = Op(Pow)
		case isIdentStart(c):
			var err error
			if t, err = s.identifier(); err != nil {
				return nil, err
			}
		case isDigit(c):
			var err error
			if t, err = s.number(); err != nil {
				return nil, err
			}
		default:
			return nil, &UnexpectedCharError{Char: c, Line: s.line}
		}
		tokens = append(tokens, t)
	}
}

// next consumes a rune and adds it to the lexeme
func (s *Scanner) next() rune {
	c := s.text.next()
	if c != EOF {
		s.lexeme.WriteRune(c)
	}
	return c
}

// read consumes runes as long as they are valid
func (s *Scanner) read(valid func(c rune) bool) {
	for valid(s.text.peek(0)) {
		s.next()
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.text.peek(0) {
		case ' ', '\t', '\r':
			s.text.next()
		case '\n':
			s.line++
			s.text.next()
		case '/':
			if s.text.peek(1) != '/' {
				return
			}
			for c := s.text.peek(0); c != '\n' && c != EOF; c = s.text.peek(0) {
				s.text.next()
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier() (Token, error) {
	s.read(func(c rune) bool { return isIdentStart(c) || isDigit(c) })
	name := s.lexeme.String()
	if !IsFunction(name) {
		return Token{}, &UnknownFunctionError{Name: name, Line: s.line}
	}
	return Func(name), nil
}

func (s *Scanner) number() (Token, error) {
	s.read(isDigit)
	if s.text.peek(0) == '.' && isDigit(s.text.peek(1)) {
		s.next()
		s.read(isDigit)
	}
	image := s.lexeme.String()
	v, err := strconv.ParseFloat(image, 64)
	// out of range literals become +Inf or 0
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, &NumberParseError{Text: image, Line: s.line, Err: err}
	}
	return Num(v), nil
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
