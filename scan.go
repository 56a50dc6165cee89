package shellglob

import "unicode/utf8"

// scan walks pattern once and reports the first syntax defect, if any.
// It shares its escape and class walkers with the match engine, so the
// two can never disagree about what is well-formed.
func scan(pattern string) error {
	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '\\':
			_, next, err := escapedRune(pattern, i)
			if err != nil {
				return err
			}
			i = next
		case '[':
			_, end, err := walkClass(pattern, i, nil)
			if err != nil {
				return err
			}
			i = end
		default:
			// Literals and the wildcards '*' and '?' need no checking.
			_, w := utf8.DecodeRuneInString(pattern[i:])
			i += w
		}
	}
	return nil
}

// escapedRune decodes one possibly '\'-escaped rune of pattern at byte
// offset i and returns it with the offset just past it. An escaped
// rune is always a literal, meta-characters included.
func escapedRune(pattern string, i int) (rune, int, error) {
	r, w := utf8.DecodeRuneInString(pattern[i:])
	if r != '\\' {
		return r, i + w, nil
	}
	if i+w >= len(pattern) {
		return 0, 0, &SyntaxError{Code: ErrDanglingEscape, Pattern: pattern, Offset: i}
	}
	r, w2 := utf8.DecodeRuneInString(pattern[i+w:])
	return r, i + w + w2, nil
}

// walkClass parses the character class opening at pattern[start] (a
// '[') and calls visit once per range term; a single character is the
// range lo==hi. It returns the negation flag and the offset just past
// the closing ']'. With a nil visit it is a pure validity check.
//
// A '-' that cannot form a range ('[-a]', '[a-]', or directly after a
// completed range) is an ordinary term. Range direction is not checked
// here; a reversed range simply matches nothing (see classMatches).
func walkClass(pattern string, start int, visit func(lo, hi rune)) (negated bool, end int, err error) {
	i := start + 1
	if i < len(pattern) && pattern[i] == '^' {
		negated = true
		i++
	}
	for nterms := 0; ; nterms++ {
		if i >= len(pattern) {
			return false, 0, &SyntaxError{Code: ErrUnterminatedClass, Pattern: pattern, Offset: start}
		}
		if pattern[i] == ']' {
			if nterms == 0 {
				return false, 0, &SyntaxError{Code: ErrEmptyClass, Pattern: pattern, Offset: i}
			}
			return negated, i + 1, nil
		}
		lo, next, err := escapedRune(pattern, i)
		if err != nil {
			return false, 0, err
		}
		hi := lo
		if next < len(pattern) && pattern[next] == '-' && next+1 < len(pattern) && pattern[next+1] != ']' {
			hi, next, err = escapedRune(pattern, next+1)
			if err != nil {
				return false, 0, err
			}
		}
		if visit != nil {
			visit(lo, hi)
		}
		i = next
	}
}

// classMatches resolves the class at pattern[start] and reports
// whether r is a member, along with the offset just past the class.
// The pattern is pre-validated, so the walk cannot fail.
func classMatches(pattern string, start int, r rune) (ok bool, end int) {
	in := false
	negated, end, _ := walkClass(pattern, start, func(lo, hi rune) {
		if lo <= hi && lo <= r && r <= hi {
			in = true
		}
	})
	return in != negated, end
}
