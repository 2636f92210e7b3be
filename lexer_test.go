package aether

import (
	"errors"
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return ts
}

func kindsWithoutEOF(tokens []Token) []TokenKind {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Kind == EOF {
		end--
	}
	out := make([]TokenKind, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Kind)
	}
	return out
}

func wantKinds(t *testing.T, src string, want []TokenKind) []Token {
	t.Helper()
	got := toks(t, src)
	gotKinds := kindsWithoutEOF(got)
	if !reflect.DeepEqual(gotKinds, want) {
		t.Fatalf("\nsource: %q\nwant kinds: %v\ngot kinds:  %v", src, want, gotKinds)
	}
	return got
}

func Test_Lexer_Declaration(t *testing.T) {
	got := wantKinds(t, "x := 5", []TokenKind{IDENT, DECLARE, NUMBER})
	if got[0].Lexeme != "x" || got[1].Lexeme != ":=" || got[2].Lexeme != "5" {
		t.Fatalf("unexpected lexemes: %+v", got)
	}
}

func Test_Lexer_Reassignment(t *testing.T) {
	wantKinds(t, "x = x + 1", []TokenKind{IDENT, ASSIGN, IDENT, PLUS, NUMBER})
}

func Test_Lexer_DeclareNotSplitIntoColonAssign(t *testing.T) {
	// ":=" must win over any single-char reading of its prefix.
	got := wantKinds(t, "abc:=1", []TokenKind{IDENT, DECLARE, NUMBER})
	if got[1].Lexeme != ":=" {
		t.Fatalf("want \":=\" lexeme, got %q", got[1].Lexeme)
	}
}

func Test_Lexer_Arithmetic(t *testing.T) {
	wantKinds(t, "(2 + 3) * 4 - 10 / 5", []TokenKind{
		LPAREN, NUMBER, PLUS, NUMBER, RPAREN, MUL, NUMBER, MINUS, NUMBER, DIV, NUMBER,
	})
}

func Test_Lexer_FloatLiteral(t *testing.T) {
	got := wantKinds(t, "3.14 + 2", []TokenKind{NUMBER, PLUS, NUMBER})
	if got[0].Lexeme != "3.14" {
		t.Fatalf("want lexeme \"3.14\", got %q", got[0].Lexeme)
	}
}

func Test_Lexer_LeadingSignIsSeparateToken(t *testing.T) {
	wantKinds(t, "-5", []TokenKind{MINUS, NUMBER})
}

func Test_Lexer_StringLiteral(t *testing.T) {
	got := wantKinds(t, `"hello world"`, []TokenKind{STRING})
	if got[0].Lexeme != `"hello world"` {
		t.Fatalf("want quoted lexeme, got %q", got[0].Lexeme)
	}
}

func Test_Lexer_EmptyString(t *testing.T) {
	wantKinds(t, `""`, []TokenKind{STRING})
}

func Test_Lexer_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"abc`)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("want *LexError, got %v", err)
	}
	if lexErr.Pos != 0 {
		t.Fatalf("want error at opening quote, got pos %d", lexErr.Pos)
	}
}

func Test_Lexer_IdentifierShapes(t *testing.T) {
	got := wantKinds(t, "_x1 y_2 Zed", []TokenKind{IDENT, IDENT, IDENT})
	want := []string{"_x1", "y_2", "Zed"}
	for i, w := range want {
		if got[i].Lexeme != w {
			t.Fatalf("ident %d: want %q, got %q", i, w, got[i].Lexeme)
		}
	}
}

func Test_Lexer_WhitespaceAndNewlineDiscarded(t *testing.T) {
	a := kindsWithoutEOF(toks(t, "1+2"))
	b := kindsWithoutEOF(toks(t, " \t1 +\n2 "))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("whitespace changed token kinds: %v vs %v", a, b)
	}
}

func Test_Lexer_IllegalCharacter(t *testing.T) {
	_, err := Tokenize("x := 5 @")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("want *LexError, got %v", err)
	}
	if lexErr.Char != '@' || lexErr.Pos != 7 {
		t.Fatalf("want '@' at pos 7, got %q at %d", lexErr.Char, lexErr.Pos)
	}
}

func Test_Lexer_LoneColonIllegal(t *testing.T) {
	_, err := Tokenize("x : 5")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("want *LexError, got %v", err)
	}
	if lexErr.Char != ':' {
		t.Fatalf("want ':', got %q", lexErr.Char)
	}
}

func Test_Lexer_Deterministic(t *testing.T) {
	src := "x := (1.5 + y) * 2"
	a := toks(t, src)
	b := toks(t, src)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two scans of %q differ:\n%+v\n%+v", src, a, b)
	}
}

func Test_Lexer_EmptyInput(t *testing.T) {
	ts := toks(t, "")
	if len(ts) != 1 || ts[0].Kind != EOF {
		t.Fatalf("want lone EOF token, got %+v", ts)
	}
}
