// Package lexer performs lexical analysis (tokenization) of Monkey source
// code. It scans the input byte by byte, recognizing operators, keywords,
// identifiers, integer and string literals, and structural symbols.
package lexer

import "github.com/jrbailey/monkeylang/token"

// Lexer scans source text one byte at a time and emits Tokens on demand.
// It tracks line and column so tokens can report their origin.
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		src:       src,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
	if lex.srcLength > 0 {
		lex.current = src[0]
	}
	return lex
}

// NextToken returns the next token in the source, advancing the cursor
// past it. Returns an EOF token once the input is exhausted; the lexer
// never fails outright, surfacing unrecognized bytes as ILLEGAL tokens.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, column := l.line, l.column
	var tok token.Token

	switch l.current {
	case '=':
		if l.peek() == '=' {
			l.advance()
			tok = token.New(token.EQ, "==", line, column)
		} else {
			tok = token.New(token.ASSIGN, "=", line, column)
		}
	case '!':
		if l.peek() == '=' {
			l.advance()
			tok = token.New(token.NOT_EQ, "!=", line, column)
		} else {
			tok = token.New(token.BANG, "!", line, column)
		}
	case '+':
		tok = token.New(token.PLUS, "+", line, column)
	case '-':
		tok = token.New(token.MINUS, "-", line, column)
	case '*':
		tok = token.New(token.ASTERISK, "*", line, column)
	case '/':
		tok = token.New(token.SLASH, "/", line, column)
	case '<':
		tok = token.New(token.LT, "<", line, column)
	case '>':
		tok = token.New(token.GT, ">", line, column)
	case ';':
		tok = token.New(token.SEMICOLON, ";", line, column)
	case ',':
		tok = token.New(token.COMMA, ",", line, column)
	case '(':
		tok = token.New(token.LPAREN, "(", line, column)
	case ')':
		tok = token.New(token.RPAREN, ")", line, column)
	case '{':
		tok = token.New(token.LBRACE, "{", line, column)
	case '}':
		tok = token.New(token.RBRACE, "}", line, column)
	case '"':
		return l.readStringLiteral()
	case 0:
		return token.New(token.EOF, "", line, column)
	default:
		if isLetter(l.current) {
			return l.readIdentifier()
		} else if isDigit(l.current) {
			return l.readNumber()
		}
		tok = token.New(token.ILLEGAL, string(l.current), line, column)
	}

	l.advance()
	return tok
}

// peek looks at the next byte without consuming it. Returns 0 past the
// end of input.
func (l *Lexer) peek() byte {
	if l.position+1 >= l.srcLength {
		return 0
	}
	return l.src[l.position+1]
}

// advance moves the cursor forward by one byte, updating line/column
// tracking.
func (l *Lexer) advance() {
	l.position++
	l.column++
	if l.position >= l.srcLength {
		l.current = 0
		l.position = l.srcLength
	} else {
		l.current = l.src[l.position]
	}
}

// skipWhitespaceAndComments consumes whitespace, single-line (//) and
// block (/* */) comments ahead of the next token. Comments are not part
// of the Monkey grammar but are an ambient lexer concern every real
// source sample relies on.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.current == '\n':
			l.line++
			l.column = 0
			l.advance()
		case isWhitespace(l.current):
			l.advance()
		case l.current == '/' && l.peek() == '/':
			for l.current != '\n' && l.current != 0 {
				l.advance()
			}
		case l.current == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for l.current != 0 {
				if l.current == '*' && l.peek() == '/' {
					l.advance()
					l.advance()
					break
				}
				if l.current == '\n' {
					l.line++
					l.column = 0
				}
				l.advance()
			}
		default:
			return
		}
	}
}

// readIdentifier reads a maximal [A-Za-z_][A-Za-z0-9_]* run and classifies
// it as a keyword or a plain identifier. The terminating byte is left as
// the current byte, per the peek-semantics contract: it must still be
// visible on the next NextToken call.
func (l *Lexer) readIdentifier() token.Token {
	line, column := l.line, l.column
	start := l.position
	for isLetter(l.current) || isDigit(l.current) {
		l.advance()
	}
	literal := l.src[start:l.position]
	return token.New(token.LookupIdent(literal), literal, line, column)
}

// readNumber reads a maximal run of digits and emits an INT token with
// the literal text; the parser is responsible for converting it to i64.
func (l *Lexer) readNumber() token.Token {
	line, column := l.line, l.column
	start := l.position
	for isDigit(l.current) {
		l.advance()
	}
	return token.New(token.INT, l.src[start:l.position], line, column)
}

// readStringLiteral reads the contents between a pair of double quotes.
// No escape sequences are recognized: a `"` is always the terminator,
// matching the source contract exactly. Hitting end of input without a
// closing quote yields whatever was read so far rather than blocking
// forever.
func (l *Lexer) readStringLiteral() token.Token {
	line, column := l.line, l.column
	l.advance() // consume opening quote
	start := l.position
	for l.current != '"' && l.current != 0 {
		l.advance()
	}
	literal := l.src[start:l.position]
	if l.current == '"' {
		l.advance() // consume closing quote
	}
	return token.New(token.STRING, literal, line, column)
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
