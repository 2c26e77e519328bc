package parser

import "github.com/jrbailey/monkeylang/token"

// Operator precedence constants, lowest to highest. Higher binds tighter.
// Grounded on the teacher's getPrecedence table (parser/parser_precedence.go),
// trimmed to the operator set spec.md names.
const (
	LOWEST      = iota + 1
	EQUALS      // ==, !=
	LESSGREATER // <, >
	SUM         // +, -
	PRODUCT     // *, /
	PREFIX      // -X, !X
	CALL        // f(x)
)

// precedences maps infix operator tokens to their binding power. A token
// absent from this table is not an infix operator and parsing stops there.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

// peekPrecedence returns the binding power of the parser's next token, or
// LOWEST if it is not an infix operator.
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// curPrecedence returns the binding power of the parser's current token,
// or LOWEST if it is not an infix operator.
func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
