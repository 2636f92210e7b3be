// lexer.go: scanner for Aether source lines.
//
// The scanner turns one line of raw text into a flat token slice. Rules are
// checked in a fixed priority order against the current byte: number, string,
// ":=", "=", single-char operators, identifier. Whitespace (including any
// embedded newline) produces no token. Anything else is a *LexError carrying
// the offending character and its position. The slice always ends with an EOF
// token; the parser uses it as its stopping condition.
package aether

import "fmt"

// TokenKind classifies a lexical unit.
type TokenKind int

const (
	EOF TokenKind = iota
	NUMBER
	STRING
	DECLARE // ":="
	ASSIGN  // "="
	PLUS
	MINUS
	MUL
	DIV
	LPAREN
	RPAREN
	IDENT
)

var kindNames = map[TokenKind]string{
	EOF:     "end of input",
	NUMBER:  "number",
	STRING:  "string",
	DECLARE: "':='",
	ASSIGN:  "'='",
	PLUS:    "'+'",
	MINUS:   "'-'",
	MUL:     "'*'",
	DIV:     "'/'",
	LPAREN:  "'('",
	RPAREN:  "')'",
	IDENT:   "identifier",
}

func (k TokenKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified lexical unit. Pos is the 0-based byte offset of the
// lexeme's first character in the source line.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    int
}

// LexError reports a character that matches no token class.
type LexError struct {
	Pos  int // 0-based byte offset
	Char byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("illegal character %q at column %d", e.Char, e.Pos+1)
}

// Lexer scans a source line into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	tokens []Token
}

// NewLexer creates a lexer for the given source line.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans src in one shot. It is a pure function of src: the same
// input always yields the same token slice.
func Tokenize(src string) ([]Token, error) {
	return NewLexer(src).Scan()
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	return ch, true
}

func (l *Lexer) addToken(k TokenKind) Token {
	tok := Token{Kind: k, Lexeme: l.src[l.start:l.cur], Pos: l.start}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.src[l.cur] {
		case ' ', '\t', '\r', '\n':
			l.cur++
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// scanNumber consumes digits with an optional fractional part. A '.' not
// followed by a digit is left for the next scan, where it is rejected
// ('.' alone is not a token).
func (l *Lexer) scanNumber() {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if b, ok := l.peek(); ok && b == '.' {
		if l.cur+1 < len(l.src) && isDigit(l.src[l.cur+1]) {
			l.advance() // '.'
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}
}

// scanString consumes up to and including the closing quote. The opening
// quote has already been consumed by the caller.
func (l *Lexer) scanString() error {
	for {
		ch, ok := l.advance()
		if !ok {
			// Point at the opening quote.
			return &LexError{Pos: l.start, Char: '"'}
		}
		if ch == '"' {
			return nil
		}
	}
}

func (l *Lexer) scanIdentifier() {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
}

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF), nil
	}

	ch, _ := l.advance()

	switch ch {
	case '+':
		return l.addToken(PLUS), nil
	case '-':
		return l.addToken(MINUS), nil
	case '*':
		return l.addToken(MUL), nil
	case '/':
		return l.addToken(DIV), nil
	case '(':
		return l.addToken(LPAREN), nil
	case ')':
		return l.addToken(RPAREN), nil
	case '=':
		return l.addToken(ASSIGN), nil
	case ':':
		// ":=" is the only token starting with ':'; a lone ':' is illegal.
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.addToken(DECLARE), nil
		}
		return Token{}, &LexError{Pos: l.start, Char: ':'}
	case '"':
		if err := l.scanString(); err != nil {
			return Token{}, err
		}
		return l.addToken(STRING), nil
	}

	if isDigit(ch) {
		l.scanNumber()
		return l.addToken(NUMBER), nil
	}

	if isAlpha(ch) {
		l.scanIdentifier()
		return l.addToken(IDENT), nil
	}

	return Token{}, &LexError{Pos: l.start, Char: ch}
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return l.tokens, nil
		}
	}
}
