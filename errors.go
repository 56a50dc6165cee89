package shellglob

import "strconv"

// An ErrorCode names a rule a malformed pattern violated.
type ErrorCode string

const (
	// ErrDanglingEscape: the pattern ends with an unconsumed '\'.
	ErrDanglingEscape ErrorCode = "pattern ends after '\\'"
	// ErrUnterminatedClass: a '[' has no matching ']' before pattern end.
	ErrUnterminatedClass ErrorCode = "character class is never closed"
	// ErrEmptyClass: a '[]' or '[^]' holds no range terms.
	ErrEmptyClass ErrorCode = "character class is empty"
)

func (c ErrorCode) String() string {
	return string(c)
}

// A SyntaxError reports a malformed pattern. It is produced only at
// compile time; matching itself cannot fail.
type SyntaxError struct {
	Code    ErrorCode
	Pattern string
	Offset  int // byte offset of the defect within Pattern
}

func (e *SyntaxError) Error() string {
	return "shellglob: invalid pattern " + quote(e.Pattern) +
		": " + string(e.Code) + " at offset " + strconv.Itoa(e.Offset)
}

func quote(s string) string {
	return strconv.Quote(s)
}
