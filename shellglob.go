// Package shellglob matches names against shell-style glob patterns.
//
// A pattern must match the entire name, not a substring. The syntax is:
//
//	pattern:
//	    { term }
//	term:
//	    '*'         matches any sequence of characters, including none
//	    '?'         matches any single character
//	    '[' [ '^' ] { character-range } ']'
//	                character class (must be non-empty)
//	    c           matches character c (c != '*', '?', '\\', '[')
//	    '\\' c      matches character c
//
//	character-range:
//	    c           matches character c (c != '\\', ']')
//	    '\\' c      matches character c
//	    lo '-' hi   matches character c for lo <= c <= hi
//
// By default '*' and '?' match every character, '/' included. Passing
// WithSeparator('/') to Compile restores path-style semantics, where
// neither wildcard crosses the separator, as in Go's path.Match.
//
// Patterns are validated eagerly: Compile reports a *SyntaxError for a
// malformed pattern, and a Pattern that exists is always safe to match
// against anything.
package shellglob

// Pattern is a compiled glob pattern. It is immutable and safe for
// concurrent use; matching allocates nothing and keeps no state
// between calls.
type Pattern struct {
	source string
	sep    rune // 0 means wildcards may consume any character
}

// Option configures pattern compilation.
type Option func(*Pattern)

// WithSeparator makes '*' and '?' stop at r, giving the pattern
// path-style semantics. Literals and character classes still match r.
func WithSeparator(r rune) Option {
	return func(p *Pattern) {
		p.sep = r
	}
}

// Compile validates pattern and returns a Pattern ready for matching.
// A malformed pattern yields a *SyntaxError naming the violated rule
// and the byte offset of the defect.
func Compile(pattern string, opts ...Option) (*Pattern, error) {
	if err := scan(pattern); err != nil {
		return nil, err
	}
	p := &Pattern{source: pattern}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MustCompile is like Compile but panics on a malformed pattern. It
// simplifies safe initialization of package-level patterns.
func MustCompile(pattern string, opts ...Option) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		panic(`shellglob: MustCompile(` + quote(pattern) + `): ` + err.Error())
	}
	return p
}

// Match compiles pattern and reports whether it matches name. Callers
// matching one pattern against many names should Compile once instead.
func Match(pattern, name string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Matches(name), nil
}

// String returns the pattern source text.
func (p *Pattern) String() string {
	return p.source
}

// Separator returns the configured wildcard separator, or 0 when
// wildcards may consume any character.
func (p *Pattern) Separator() rune {
	return p.sep
}
