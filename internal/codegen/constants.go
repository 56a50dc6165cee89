// Package codegen provides code generation helpers and constants.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Variable and label names used in generated code
const (
	InputName           = "input"
	InputLenName        = "l"
	OffsetName          = "offset"
	NextInstructionName = "nextInstruction"
	StarInstructionName = "starInstruction"
	StarOffsetName      = "starOffset"
	StepSelectName      = "StepSelect"
	TryFallbackName     = "TryFallback"
)

// InstructionName returns the label name for an instruction.
func InstructionName(id int) string {
	return fmt.Sprintf("Ins%d", id)
}

// UpperFirst upper-cases the first character so the generated
// identifiers are exported.
func UpperFirst(s string) string {
	r, w := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[w:]
}
