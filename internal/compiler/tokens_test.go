package compiler

import (
	"reflect"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		pattern string
		want    []token
	}{
		{"", nil},
		{"abc", []token{
			{Kind: tokenLiteral, Literal: "abc"},
		}},
		{"*", []token{
			{Kind: tokenSeq},
		}},
		{"***", []token{
			{Kind: tokenSeq},
		}},
		{"a*b", []token{
			{Kind: tokenLiteral, Literal: "a"},
			{Kind: tokenSeq},
			{Kind: tokenLiteral, Literal: "b"},
		}},
		{"?a?", []token{
			{Kind: tokenSingle},
			{Kind: tokenLiteral, Literal: "a"},
			{Kind: tokenSingle},
		}},
		{`a\*b`, []token{
			{Kind: tokenLiteral, Literal: "a*b"},
		}},
		{`\\`, []token{
			{Kind: tokenLiteral, Literal: `\`},
		}},
		{"*ab?cd[e-z]*", []token{
			{Kind: tokenSeq},
			{Kind: tokenLiteral, Literal: "ab"},
			{Kind: tokenSingle},
			{Kind: tokenLiteral, Literal: "cd"},
			{Kind: tokenClass, Ranges: []rangeTerm{{Lo: 'e', Hi: 'z'}}},
			{Kind: tokenSeq},
		}},
		{"[abc]", []token{
			{Kind: tokenClass, Ranges: []rangeTerm{
				{Lo: 'a', Hi: 'a'}, {Lo: 'b', Hi: 'b'}, {Lo: 'c', Hi: 'c'},
			}},
		}},
		{"[^a-c]", []token{
			{Kind: tokenClass, Negated: true, Ranges: []rangeTerm{{Lo: 'a', Hi: 'c'}}},
		}},
		{"[a-]", []token{
			{Kind: tokenClass, Ranges: []rangeTerm{
				{Lo: 'a', Hi: 'a'}, {Lo: '-', Hi: '-'},
			}},
		}},
		{"[-a]", []token{
			{Kind: tokenClass, Ranges: []rangeTerm{
				{Lo: '-', Hi: '-'}, {Lo: 'a', Hi: 'a'},
			}},
		}},
		{`[\]\-]`, []token{
			{Kind: tokenClass, Ranges: []rangeTerm{
				{Lo: ']', Hi: ']'}, {Lo: '-', Hi: '-'},
			}},
		}},
		{"[α-ζ]", []token{
			{Kind: tokenClass, Ranges: []rangeTerm{{Lo: 'α', Hi: 'ζ'}}},
		}},
	}
	for _, tt := range tests {
		got := scanTokens(tt.pattern)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("scanTokens(%q) = %+v, want %+v", tt.pattern, got, tt.want)
		}
	}
}

func TestScanTokensEscapedBracket(t *testing.T) {
	// An escaped '[' opens no class; it joins the literal run.
	got := scanTokens(`\[a]`)
	want := []token{{Kind: tokenLiteral, Literal: "[a]"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanTokens(%q) = %+v, want %+v", `\[a]`, got, want)
	}
}

func TestValidRanges(t *testing.T) {
	in := []rangeTerm{{Lo: 'z', Hi: 'a'}, {Lo: 'a', Hi: 'c'}, {Lo: 'x', Hi: 'x'}}
	got := validRanges(in)
	want := []rangeTerm{{Lo: 'a', Hi: 'c'}, {Lo: 'x', Hi: 'x'}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("validRanges(%+v) = %+v, want %+v", in, got, want)
	}
	if len(validRanges([]rangeTerm{{Lo: 'z', Hi: 'a'}})) != 0 {
		t.Error("a reversed range must be filtered out")
	}
}
