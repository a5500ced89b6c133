package token

import "testing"

func TestLookupIdent(t *testing.T) {
	cases := []struct {
		word string
		want Type
	}{
		{"let", LET},
		{"fn", FUNCTION},
		{"if", IF},
		{"else", ELSE},
		{"return", RETURN},
		{"true", TRUE},
		{"false", FALSE},
		{"blah", IDENT},
		{"lets", IDENT},
	}
	for _, tc := range cases {
		if got := LookupIdent(tc.word); got != tc.want {
			t.Fatalf("LookupIdent(%q) = %s, want %s", tc.word, got, tc.want)
		}
	}
}

func TestLookupSymbol(t *testing.T) {
	for ch, want := range map[rune]Type{'=': ASSIGN, '/': SLASH, '}': RBRACE} {
		got, ok := LookupSymbol(ch)
		if !ok || got != want {
			t.Fatalf("LookupSymbol(%q) = %s, %v; want %s", ch, got, ok, want)
		}
	}
	if _, ok := LookupSymbol('@'); ok {
		t.Fatalf("expected '@' to be unknown")
	}
}

func TestTypeString(t *testing.T) {
	if NOT_EQ.String() != "NOT_EQ" {
		t.Fatalf("unexpected name %q", NOT_EQ.String())
	}
	if got := Type(999).String(); got != "unknown_token_999" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}
