package shellglob

import "unicode/utf8"

// Matches reports whether name matches the whole pattern. It is a pure
// function: no state survives the call, and it cannot fail or panic
// for any name.
//
// The engine walks pattern and name with one cursor each plus a single
// backtrack point, recorded at the most recent '*'. The star first
// matches nothing; on a downstream mismatch it is widened by one
// character and the scan resumes after it. One point suffices because
// a later '*' supersedes any earlier one. Worst case O(P·N), constant
// extra space.
func (p *Pattern) Matches(name string) bool {
	pattern := p.source
	px, nx := 0, 0
	starP, starN := -1, 0
	for nx < len(name) {
		if px < len(pattern) {
			switch pattern[px] {
			case '*':
				// Tentatively match zero characters.
				starP, starN = px+1, nx
				px++
				continue
			case '?':
				r, w := utf8.DecodeRuneInString(name[nx:])
				if p.sep == 0 || r != p.sep {
					px++
					nx += w
					continue
				}
			case '[':
				r, w := utf8.DecodeRuneInString(name[nx:])
				if ok, end := classMatches(pattern, px, r); ok {
					px = end
					nx += w
					continue
				}
			case '\\':
				lit, end, _ := escapedRune(pattern, px)
				r, w := utf8.DecodeRuneInString(name[nx:])
				if r == lit {
					px = end
					nx += w
					continue
				}
			default:
				lit, pw := utf8.DecodeRuneInString(pattern[px:])
				r, w := utf8.DecodeRuneInString(name[nx:])
				if r == lit {
					px += pw
					nx += w
					continue
				}
			}
		}
		// Mismatch (or pattern exhausted): widen the active star by
		// one character and retry just past it.
		if starP >= 0 {
			r, w := utf8.DecodeRuneInString(name[starN:])
			if p.sep != 0 && r == p.sep {
				return false
			}
			starN += w
			px, nx = starP, starN
			continue
		}
		return false
	}
	// Name exhausted: only trailing stars may remain.
	for px < len(pattern) && pattern[px] == '*' {
		px++
	}
	return px == len(pattern)
}
