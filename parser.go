// parser.go: recursive-descent parser producing Aether expression trees.
//
// Grammar, precedence low to high, left-associative at each level:
//
//	statement  := IDENT ":=" expression
//	            | IDENT "="  expression
//	            | expression
//	expression := term (("+"|"-") term)*
//	term       := factor (("*"|"/") factor)*
//	factor     := NUMBER | IDENT | "(" expression ")"
//
// A statement beginning with IDENT is a declaration or reassignment only when
// the next token is ":=" or "="; otherwise the IDENT is an ordinary variable
// reference inside an expression. The parser looks one token ahead before
// committing, so the IDENT is consumed exactly once either way.
//
// Exactly one statement is parsed per call; anything left over after it is a
// *ParseError.
package aether

import (
	"fmt"
	"strconv"
)

// Node is an expression tree node. The set of implementations is closed:
// NumberLit, VarRef, BinaryExpr, DeclStmt and AssignStmt are the only
// variants, so the evaluator's type switch is exhaustive. Nodes are immutable
// once built; a parse produces exactly one root per source line.
type Node interface {
	node()
}

// BinOp is a binary arithmetic operator.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("BinOp(%d)", int(op))
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

// VarRef references a bound variable by name.
type VarRef struct {
	Name string
}

// BinaryExpr applies Op to the results of Left and Right.
type BinaryExpr struct {
	Op    BinOp
	Left  Node
	Right Node
}

// DeclStmt binds a new name ("x := expr"); it is an error if the name
// already exists.
type DeclStmt struct {
	Name  string
	Value Node
}

// AssignStmt updates a name ("x = expr"). Assigning an undeclared name
// creates it; see Env.Assign.
type AssignStmt struct {
	Name  string
	Value Node
}

func (NumberLit) node()  {}
func (VarRef) node()     {}
func (BinaryExpr) node() {}
func (DeclStmt) node()   {}
func (AssignStmt) node() {}

// ParseError reports a token sequence that does not match the grammar. Tok is
// the token at the point of failure (the EOF token when input ran out).
type ParseError struct {
	Msg string
	Tok Token
}

func (e *ParseError) Error() string {
	if e.Tok.Kind == EOF {
		return fmt.Sprintf("%s, got end of input", e.Msg)
	}
	return fmt.Sprintf("%s, got %s %q at column %d", e.Msg, e.Tok.Kind, e.Tok.Lexeme, e.Tok.Pos+1)
}

// Parse consumes a token slice (as produced by Tokenize, EOF-terminated) and
// returns the single statement it encodes.
func Parse(tokens []Token) (Node, error) {
	p := &parser{toks: tokens}
	node, err := p.statement()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errAt("unexpected token after statement")
	}
	return node, nil
}

// ParseSource tokenizes and parses src in one step.
func ParseSource(src string) (Node, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

type parser struct {
	toks []Token
	i    int
}

func (p *parser) atEnd() bool { return p.peek().Kind == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		// Tolerate a missing terminal EOF from hand-built slices.
		return Token{Kind: EOF, Pos: p.endPos()}
	}
	return p.toks[p.i]
}

func (p *parser) peekN(n int) Token {
	if p.i+n >= len(p.toks) {
		return Token{Kind: EOF, Pos: p.endPos()}
	}
	return p.toks[p.i+n]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) endPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	last := p.toks[len(p.toks)-1]
	return last.Pos + len(last.Lexeme)
}

func (p *parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.peek().Kind == k {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(k TokenKind, msg string) (Token, error) {
	if p.match(k) {
		return p.prev(), nil
	}
	return Token{}, p.errAt(msg)
}

func (p *parser) errAt(msg string) error {
	return &ParseError{Msg: msg, Tok: p.peek()}
}

func (p *parser) statement() (Node, error) {
	if p.peek().Kind == IDENT {
		switch p.peekN(1).Kind {
		case DECLARE:
			name := p.peek().Lexeme
			p.i += 2
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			return DeclStmt{Name: name, Value: value}, nil
		case ASSIGN:
			name := p.peek().Lexeme
			p.i += 2
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			return AssignStmt{Name: name, Value: value}, nil
		}
	}
	return p.expression()
}

func (p *parser) expression() (Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := Add
		if p.prev().Kind == MINUS {
			op = Sub
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = BinaryExpr{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *parser) term() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MUL, DIV) {
		op := Mul
		if p.prev().Kind == DIV {
			op = Div
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = BinaryExpr{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *parser) factor() (Node, error) {
	switch {
	case p.match(NUMBER):
		v, err := strconv.ParseFloat(p.prev().Lexeme, 64)
		if err != nil {
			// The lexer only emits digit/dot lexemes, so this is unreachable
			// for its output; hand-built tokens can still trip it.
			return nil, &ParseError{Msg: "invalid number literal", Tok: p.prev()}
		}
		return NumberLit{Value: v}, nil
	case p.match(IDENT):
		return VarRef{Name: p.prev().Lexeme}, nil
	case p.match(LPAREN):
		node, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "expected ')'"); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.errAt("expected number, variable or '('")
}
