package compiler

import "unicode/utf8"

// tokenKind discriminates glob match tokens.
type tokenKind int

const (
	tokenLiteral tokenKind = iota // run of literal characters, escapes resolved
	tokenSingle                   // '?'
	tokenSeq                      // one or more consecutive '*'
	tokenClass                    // '[...]'
)

// rangeTerm is one inclusive character range of a class; a single
// character is the range Lo == Hi.
type rangeTerm struct {
	Lo, Hi rune
}

type token struct {
	Kind    tokenKind
	Literal string      // tokenLiteral only
	Negated bool        // tokenClass only
	Ranges  []rangeTerm // tokenClass only
}

// scanTokens splits a pattern into match tokens. Consecutive '*' fold
// into one sequence wildcard and adjacent literal characters into one
// literal run, since the generated code treats them identically.
//
// The pattern must already have passed shellglob validation (globgen
// compiles it first); scanTokens trusts that and does not re-check.
func scanTokens(pattern string) []token {
	var tokens []token
	var lit []rune
	flush := func() {
		if len(lit) > 0 {
			tokens = append(tokens, token{Kind: tokenLiteral, Literal: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '*':
			flush()
			if len(tokens) == 0 || tokens[len(tokens)-1].Kind != tokenSeq {
				tokens = append(tokens, token{Kind: tokenSeq})
			}
			i++
		case '?':
			flush()
			tokens = append(tokens, token{Kind: tokenSingle})
			i++
		case '[':
			flush()
			var cls token
			cls, i = scanClassToken(pattern, i)
			tokens = append(tokens, cls)
		case '\\':
			var r rune
			r, i = decodeAfter(pattern, i+1)
			lit = append(lit, r)
		default:
			var r rune
			r, i = decodeAfter(pattern, i)
			lit = append(lit, r)
		}
	}
	flush()
	return tokens
}

// scanClassToken reads the class opening at pattern[start] and returns
// its token with the offset just past the closing ']'. Term grammar
// matches the shellglob validator: optional leading '^', then single
// or 'lo-hi' terms with '\'-escapes, and a '-' that cannot form a
// range is an ordinary character.
func scanClassToken(pattern string, start int) (token, int) {
	tok := token{Kind: tokenClass}
	i := start + 1
	if pattern[i] == '^' {
		tok.Negated = true
		i++
	}
	for pattern[i] != ']' {
		lo, next := escapedAt(pattern, i)
		hi := lo
		if pattern[next] == '-' && pattern[next+1] != ']' {
			hi, next = escapedAt(pattern, next+1)
		}
		tok.Ranges = append(tok.Ranges, rangeTerm{Lo: lo, Hi: hi})
		i = next
	}
	return tok, i + 1
}

func escapedAt(pattern string, i int) (rune, int) {
	if pattern[i] == '\\' {
		return decodeAfter(pattern, i+1)
	}
	return decodeAfter(pattern, i)
}

func decodeAfter(pattern string, i int) (rune, int) {
	r, w := utf8.DecodeRuneInString(pattern[i:])
	return r, i + w
}

// validRanges filters out reversed ranges, which can never match.
func validRanges(ranges []rangeTerm) []rangeTerm {
	out := ranges[:0:0]
	for _, rg := range ranges {
		if rg.Lo <= rg.Hi {
			out = append(out, rg)
		}
	}
	return out
}
