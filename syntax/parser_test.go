package syntax

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, pattern string) Node {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

func TestParseBasics(t *testing.T) {
	tests := []struct {
		pattern string
		want    Node
	}{
		{"", Empty{}},
		{"()", Empty{}},
		{"a", Char{'a'}},
		{"|", Or{Empty{}, Empty{}}},
		{"a|", Or{Char{'a'}, Empty{}}},
		{"|a", Or{Empty{}, Char{'a'}}},
		{"ab", Concat{Char{'a'}, Char{'b'}}},
		{"abc", Concat{Concat{Char{'a'}, Char{'b'}}, Char{'c'}}},
		{"a+?", ZeroOrOne{OneOrMore{Char{'a'}}}},
		{"a+++", OneOrMore{OneOrMore{OneOrMore{Char{'a'}}}}},
		{"ab|c", Or{Concat{Char{'a'}, Char{'b'}}, Char{'c'}}},
		{"a|bc", Or{Char{'a'}, Concat{Char{'b'}, Char{'c'}}}},
		{"a|b|c", Or{Or{Char{'a'}, Char{'b'}}, Char{'c'}}},
		{"(ab)+", OneOrMore{Concat{Char{'a'}, Char{'b'}}}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := mustParse(t, tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	const pattern = "a(bcd*|efgh?(jk)+)*"
	first := mustParse(t, pattern)
	second := mustParse(t, pattern)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Parse(%q) is not deterministic: %s vs %s", pattern, first, second)
	}
}

func TestParseLeftLeaningConcatChain(t *testing.T) {
	pattern := "abcde"
	got := mustParse(t, pattern)
	want := Node(Char{'a'})
	for _, c := range pattern[1:] {
		want = Concat{Left: want, Right: Char{byte(c)}}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(%q) = %s, want %s", pattern, got, want)
	}
}

func TestParseUnexpectedRegex(t *testing.T) {
	// A NO_OPR residual of length > 1 that is not fully parenthesized.
	// "(a" is unbalanced: level never returns to 0, so the scan finds no
	// depth-0 operator as long as "(" is read as the first character with
	// index 0 (i>0 guard on concat detection) — left as a residual of
	// length 2, neither single-char nor wrapped in matching parens.
	if _, err := Parse("(a"); err == nil {
		t.Errorf("Parse(%q): expected error, got none", "(a")
	}
}
