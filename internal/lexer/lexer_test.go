package lexer

import (
	"testing"
)

func TestScan_Operators(t *testing.T) {
	input := `a<=b!=c`

	tests := []struct {
		expectedType TokenType
		expectedText string
	}{
		{Id, "a"},
		{Lte, "<="},
		{Id, "b"},
		{NotEq, "!="},
		{Id, "c"},
	}

	tokens := Lex(input)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tokens[i].Type)
		}
		if tokens[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q",
				i, tt.expectedText, tokens[i].Text)
		}
	}
}

func TestScan_AllPunctuation(t *testing.T) {
	input := `: ; , -> & + - * / == != < <= > >= . = ( ) [ ] { } ?`

	expected := []TokenType{
		Colon, Semicolon, Comma, Arrow, Ampersand, Plus, Dash, Star, Slash,
		Equal, NotEq, Lt, Lte, Gt, Gte, Dot, Gets,
		OpenParen, CloseParen, OpenBracket, CloseBracket, OpenBrace, CloseBrace,
		QuestionMark,
	}

	tokens := Lex(input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, typ, tokens[i].Type)
		}
	}
}

func TestScan_Keywords(t *testing.T) {
	input := `int struct nil break continue return if else while new let extern fn and or not ints`

	expected := []TokenType{
		Int, Struct, Nil, Break, Continue, Return, If, Else, While, NewKw, Let,
		Extern, Fn, And, Or, Not,
		Id, // "ints" is one character past a keyword
	}

	tokens := Lex(input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, typ, tokens[i].Type)
		}
	}
}

func TestScan_KeywordsAreCaseSensitive(t *testing.T) {
	tokens := Lex(`Int WHILE If`)
	for i, tok := range tokens {
		if tok.Type != Id {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, Id, tok.Type)
		}
	}
}

func TestScan_NumbersAndIdentifiers(t *testing.T) {
	input := `x1 123 0 42abc snake_case`

	tests := []struct {
		expectedType TokenType
		expectedText string
	}{
		{Id, "x1"},
		{Num, "123"},
		{Num, "0"},
		{Num, "42"},
		{Id, "abc"},
		{Id, "snake_case"},
	}

	tokens := Lex(input)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType || tokens[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - token wrong. expected=%q %q, got=%q %q",
				i, tt.expectedType, tt.expectedText, tokens[i].Type, tokens[i].Text)
		}
	}
}

func TestScan_SkipsComments(t *testing.T) {
	input := "a // line comment\nb /* block\ncomment */ c"

	expected := []string{"a", "b", "c"}

	tokens := Lex(input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, text := range expected {
		if tokens[i].Type != Id || tokens[i].Text != text {
			t.Fatalf("tests[%d] - token wrong. expected=Id %q, got=%q %q",
				i, text, tokens[i].Type, tokens[i].Text)
		}
	}
}

func TestScan_BlockCommentsDoNotNest(t *testing.T) {
	tokens := Lex(`a /* outer /* inner */ b`)

	tests := []struct {
		expectedType TokenType
		expectedText string
	}{
		{Id, "a"},
		{Id, "b"},
	}

	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType || tokens[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - token wrong. expected=%q %q, got=%q %q",
				i, tt.expectedType, tt.expectedText, tokens[i].Type, tokens[i].Text)
		}
	}
}

func TestScan_UnterminatedBlockComment(t *testing.T) {
	lx := New(`x /* oops`)
	tokens := lx.Scan()

	if len(tokens) != 2 {
		t.Fatalf("token count wrong. expected=2, got=%d", len(tokens))
	}
	if tokens[0].Type != Id || tokens[0].Text != "x" {
		t.Fatalf("tokens[0] wrong. got=%q %q", tokens[0].Type, tokens[0].Text)
	}
	if tokens[1].Type != Error || tokens[1].Text != "/* oops" {
		t.Fatalf("tokens[1] wrong. expected=Error %q, got=%q %q",
			"/* oops", tokens[1].Type, tokens[1].Text)
	}

	errs := lx.Errors()
	if len(errs) != 1 {
		t.Fatalf("error count wrong. expected=1, got=%d", len(errs))
	}
	if errs[0].Kind != ErrUnterminatedBlockComment {
		t.Fatalf("error kind wrong. got=%d", errs[0].Kind)
	}
}

func TestScan_UnterminatedLineComment(t *testing.T) {
	lx := New(`x // trailing`)
	tokens := lx.Scan()

	if len(tokens) != 2 {
		t.Fatalf("token count wrong. expected=2, got=%d", len(tokens))
	}
	if tokens[1].Type != Error || tokens[1].Text != "// trailing" {
		t.Fatalf("tokens[1] wrong. expected=Error %q, got=%q %q",
			"// trailing", tokens[1].Type, tokens[1].Text)
	}

	errs := lx.Errors()
	if len(errs) != 1 || errs[0].Kind != ErrUnterminatedLineComment {
		t.Fatalf("expected one unterminated line comment error, got %v", errs)
	}
}

func TestScan_LineCommentConsumesNewline(t *testing.T) {
	tokens := Lex("a // c\nb")
	if len(tokens) != 2 {
		t.Fatalf("token count wrong. expected=2, got=%d", len(tokens))
	}
	if tokens[1].Type != Id || tokens[1].Text != "b" {
		t.Fatalf("tokens[1] wrong. got=%q %q", tokens[1].Type, tokens[1].Text)
	}
}

func TestScan_ErrorAbsorbsGarbageRun(t *testing.T) {
	tests := []struct {
		input string
		types []TokenType
		texts []string
	}{
		// The run stops exactly at the next byte that could start a token,
		// absorbing interior whitespace.
		{`a @#$ b`, []TokenType{Id, Error, Id}, []string{"a", "@#$ ", "b"}},
		{`x~~;y`, []TokenType{Id, Error, Semicolon, Id}, []string{"x", "~~", ";", "y"}},
		{`@@@`, []TokenType{Error}, []string{"@@@"}},
		{`#5`, []TokenType{Error, Num}, []string{"#", "5"}},
		{"$\t|=", []TokenType{Error, Gets}, []string{"$\t|", "="}},
	}

	for i, tt := range tests {
		tokens := Lex(tt.input)
		if len(tokens) != len(tt.types) {
			t.Fatalf("tests[%d] - token count wrong. expected=%d, got=%d",
				i, len(tt.types), len(tokens))
		}
		for j := range tt.types {
			if tokens[j].Type != tt.types[j] || tokens[j].Text != tt.texts[j] {
				t.Fatalf("tests[%d] token %d wrong. expected=%q %q, got=%q %q",
					i, j, tt.types[j], tt.texts[j], tokens[j].Type, tokens[j].Text)
			}
		}
	}
}

func TestScan_EmptyAndBlankInput(t *testing.T) {
	for i, input := range []string{"", "   \t\n ", "// only a comment\n", "/* only */"} {
		if tokens := Lex(input); len(tokens) != 0 {
			t.Fatalf("tests[%d] - expected no tokens, got %d", i, len(tokens))
		}
	}
}

// Spans cover the input: each token matches its source range, starts at or
// after the previous token's end, and is non-empty.
func TestScan_SpansCoverInput(t *testing.T) {
	inputs := []string{
		"fn main() -> int { return 0; }",
		"a<=b!=c",
		"x = [int; 3];  // make an array\ny = x[0];",
		"a @#$ b ~~~",
		"struct S { p: &S, buf: [int] }",
	}

	for i, input := range inputs {
		prevLast := 0
		for j, tok := range Lex(input) {
			if tok.First < prevLast {
				t.Fatalf("inputs[%d] token %d starts at %d before previous end %d",
					i, j, tok.First, prevLast)
			}
			if tok.Last <= tok.First {
				t.Fatalf("inputs[%d] token %d has empty span [%d,%d)", i, j, tok.First, tok.Last)
			}
			if got := input[tok.First:tok.Last]; got != tok.Text {
				t.Fatalf("inputs[%d] token %d text mismatch. span=%q text=%q", i, j, got, tok.Text)
			}
			prevLast = tok.Last
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{Token{Type: Id, Text: "foo"}, "Id(foo)"},
		{Token{Type: Num, Text: "42"}, "Num(42)"},
		{Token{Type: Error, Text: "@#"}, "Error(@#)"},
		{Token{Type: Error, Text: "@#\n"}, "Error(@#\n\n)"},
		{Token{Type: Lte, Text: "<="}, "Lte"},
		{Token{Type: While, Text: "while"}, "While"},
	}

	for i, tt := range tests {
		if got := tt.token.String(); got != tt.expected {
			t.Fatalf("tests[%d] - string wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestFormat(t *testing.T) {
	line := Format(Lex(`a<=b`))
	if line != "Id(a) Lte Id(b)" {
		t.Fatalf("format wrong. got=%q", line)
	}

	if Format(nil) != "" {
		t.Fatalf("empty format should be empty, got=%q", Format(nil))
	}
}

func TestLookupIdent(t *testing.T) {
	if LookupIdent("while") != While {
		t.Fatalf("expected keyword lookup for %q", "while")
	}
	if LookupIdent("whilst") != Id {
		t.Fatalf("expected identifier for %q", "whilst")
	}
}
