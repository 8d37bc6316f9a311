package lexer

import "testing"

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeIdentifiersAndInts(t *testing.T) {
	toks, err := Tokenize([]byte("foo 42 -17 bar_2"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{IDENT, INT, INT, IDENT, EOF}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), toks)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d type = %s, want %s", i, got[i], want[i])
		}
	}
	if toks[1].Literal != "42" || toks[2].Literal != "-17" {
		t.Errorf("int literals = %q, %q", toks[1].Literal, toks[2].Literal)
	}
}

func TestTokenizeSymbols(t *testing.T) {
	toks, err := Tokenize([]byte("1 2+3-"))
	if err != nil {
		t.Fatal(err)
	}
	want := "INT INT SYMBOL INT SYMBOL EOF"
	got := ""
	for i, tk := range toks {
		if i > 0 {
			got += " "
		}
		got += tk.Type.String()
	}
	if got != want {
		t.Errorf("token types = %q, want %q", got, want)
	}
}

func TestTokenizeStrings(t *testing.T) {
	toks, err := Tokenize([]byte(`'it\'s' "a\nb"`))
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != SQSTR || toks[0].Literal != `'it\'s'` {
		t.Errorf("sqstr = %+v", toks[0])
	}
	if toks[1].Type != DQSTR || toks[1].Literal != `"a\nb"` {
		t.Errorf("dqstr = %+v", toks[1])
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize([]byte(`'abc`))
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, err := Tokenize([]byte("1 # a comment\n2"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{INT, COMMENT, INT, EOF}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeBlock(t *testing.T) {
	toks, err := Tokenize([]byte("{1 2+}"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Type != BLOCK {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Literal != "1 2+" {
		t.Errorf("block literal = %q, want %q", toks[0].Literal, "1 2+")
	}
}

func TestTokenizeNestedBlock(t *testing.T) {
	toks, err := Tokenize([]byte("{{1}2}"))
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != BLOCK || toks[0].Literal != "{1}2" {
		t.Errorf("nested block = %+v", toks[0])
	}
}

func TestTokenizeBlockWithBraceInString(t *testing.T) {
	toks, err := Tokenize([]byte(`{"}"}`))
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != BLOCK || toks[0].Literal != `"}"` {
		t.Errorf("block with brace in string = %+v", toks[0])
	}
}

func TestTokenizeUnmatchedBlock(t *testing.T) {
	_, err := Tokenize([]byte("{1 2"))
	if err == nil {
		t.Fatal("expected error for unterminated block")
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken(IDENT, "abs", Position{Line: 1, Column: 1})
	if tok.String() != `IDENT("abs") at 1:1` {
		t.Errorf("Token.String() = %q", tok.String())
	}
}
