// Package compiler turns validated glob patterns into generated Go
// matcher source.
package compiler

import (
	"fmt"
	"go/format"
	"os"

	"github.com/dave/jennifer/jen"
	"github.com/shellglob/shellglob/internal/codegen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string
	Name             string
	OutputFile       string
	Package          string
	Separator        rune     // 0 disables separator awareness
	GenerateTestFile bool     // Generate a test file exercising the matcher
	TestFileInputs   []string // Test inputs for the generated test file
	Verbose          bool     // Enable verbose logging of generation decisions
}

// Compiler generates the Go source for one glob pattern.
type Compiler struct {
	config Config
	file   *jen.File
	tokens []token
	logger *Logger
}

// New creates a new compiler instance. The pattern must already have
// passed shellglob validation; globgen guarantees that before
// constructing a Compiler.
func New(config Config) *Compiler {
	config.Name = codegen.UpperFirst(config.Name)
	c := &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
	c.tokens = scanTokens(config.Pattern)
	c.logTokens()
	return c
}

func (c *Compiler) logTokens() {
	c.logger.Section("Pattern Analysis")
	c.logger.Log("Pattern: %s", c.config.Pattern)
	c.logger.Log("Tokens: %d", len(c.tokens))
	for i, tok := range c.tokens {
		switch tok.Kind {
		case tokenLiteral:
			c.logger.Log("  %d: literal %q", i, tok.Literal)
		case tokenSingle:
			c.logger.Log("  %d: single wildcard", i)
		case tokenSeq:
			c.logger.Log("  %d: sequence wildcard", i)
		case tokenClass:
			c.logger.Log("  %d: class negated=%v terms=%d", i, tok.Negated, len(tok.Ranges))
		}
	}
	if c.config.Separator != 0 {
		c.logger.Log("Separator: %q", c.config.Separator)
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	c.file.Comment(fmt.Sprintf("Code generated by globgen for pattern: %s", c.config.Pattern))
	c.file.Comment("DO NOT EDIT.")
	c.file.Line()

	// Generate the main struct type
	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()

	// Generate convenience variable for direct usage
	c.file.Var().Id(fmt.Sprintf("Compiled%s", c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	c.method("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(c.generateMatchFunction(false)...)

	c.method("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(c.generateMatchFunction(true)...)

	// Save to file
	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	// Format the generated file
	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	// Generate test file if requested
	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// generateMatchFunction generates the main matching logic: one label
// per token, a step selector for backtracking re-entry, and a fallback
// label that widens the active sequence wildcard by one character.
func (c *Compiler) generateMatchFunction(isBytes bool) []jen.Code {
	code := []jen.Code{
		jen.Id(codegen.InputLenName).Op(":=").Len(jen.Id(codegen.InputName)),
		jen.Id(codegen.OffsetName).Op(":=").Lit(0),
		jen.Id(codegen.StarInstructionName).Op(":=").Lit(-1),
		jen.Id(codegen.StarOffsetName).Op(":=").Lit(0),
		jen.Id(codegen.NextInstructionName).Op(":=").Lit(0),
		jen.Goto().Id(codegen.StepSelectName),
	}

	code = append(code, c.generateFallback(isBytes)...)
	code = append(code, c.generateStepSelector()...)

	for i, tok := range c.tokens {
		code = append(code, c.generateToken(i, tok, isBytes)...)
	}
	code = append(code, c.generateDone()...)

	return code
}

// generateStepSelector generates the instruction dispatch switch. The
// final case is the name-exhausted check past the last token.
func (c *Compiler) generateStepSelector() []jen.Code {
	cases := []jen.Code{}
	for i := 0; i <= len(c.tokens); i++ {
		cases = append(cases,
			jen.Case(jen.Lit(i)).Block(jen.Goto().Id(codegen.InstructionName(i))),
		)
	}

	return []jen.Code{
		jen.Id(codegen.StepSelectName).Op(":"),
		jen.Switch(jen.Id(codegen.NextInstructionName)).Block(cases...),
	}
}

// generateToken generates code for a single token.
func (c *Compiler) generateToken(id int, tok token, isBytes bool) []jen.Code {
	label := jen.Id(codegen.InstructionName(id)).Op(":")

	switch tok.Kind {
	case tokenLiteral:
		return c.generateLiteralToken(label, id, tok, isBytes)
	case tokenSingle:
		return c.generateSingleToken(label, id, isBytes)
	case tokenSeq:
		return c.generateSeqToken(label, id)
	default:
		return c.generateClassToken(label, id, tok, isBytes)
	}
}

// generateLiteralToken generates a prefix comparison for a literal run.
func (c *Compiler) generateLiteralToken(label *jen.Statement, id int, tok token, isBytes bool) []jen.Code {
	var prefixCheck *jen.Statement
	if isBytes {
		prefixCheck = jen.Qual("bytes", "HasPrefix").Call(
			jen.Id(codegen.InputName).Index(jen.Id(codegen.OffsetName).Op(":")),
			jen.Index().Byte().Parens(jen.Lit(tok.Literal)),
		)
	} else {
		prefixCheck = jen.Qual("strings", "HasPrefix").Call(
			jen.Id(codegen.InputName).Index(jen.Id(codegen.OffsetName).Op(":")),
			jen.Lit(tok.Literal),
		)
	}

	return []jen.Code{
		label,
		jen.Block(
			jen.If(jen.Op("!").Add(prefixCheck)).Block(
				jen.Goto().Id(codegen.TryFallbackName),
			),
			jen.Id(codegen.OffsetName).Op("+=").Lit(len(tok.Literal)),
			jen.Goto().Id(codegen.InstructionName(id+1)),
		),
	}
}

// generateSingleToken generates a '?' token: consume exactly one
// character, any character unless it is the configured separator.
func (c *Compiler) generateSingleToken(label *jen.Statement, id int, isBytes bool) []jen.Code {
	body := []jen.Code{
		jen.If(jen.Id(codegen.InputLenName).Op("<=").Id(codegen.OffsetName)).Block(
			jen.Goto().Id(codegen.TryFallbackName),
		),
	}
	if c.config.Separator != 0 {
		body = append(body,
			jen.List(jen.Id("r"), jen.Id("w")).Op(":=").Add(c.decodeAtOffset(isBytes)),
			jen.If(jen.Id("r").Op("==").LitRune(c.config.Separator)).Block(
				jen.Goto().Id(codegen.TryFallbackName),
			),
		)
	} else {
		body = append(body,
			jen.List(jen.Id("_"), jen.Id("w")).Op(":=").Add(c.decodeAtOffset(isBytes)),
		)
	}
	body = append(body,
		jen.Id(codegen.OffsetName).Op("+=").Id("w"),
		jen.Goto().Id(codegen.InstructionName(id+1)),
	)

	return []jen.Code{label, jen.Block(body...)}
}

// generateSeqToken generates a '*' token: record the backtrack point
// and first try to match nothing.
func (c *Compiler) generateSeqToken(label *jen.Statement, id int) []jen.Code {
	return []jen.Code{
		label,
		jen.Block(
			jen.Id(codegen.StarInstructionName).Op("=").Lit(id+1),
			jen.Id(codegen.StarOffsetName).Op("=").Id(codegen.OffsetName),
			jen.Goto().Id(codegen.InstructionName(id+1)),
		),
	}
}

// generateClassToken generates a character class membership test.
func (c *Compiler) generateClassToken(label *jen.Statement, id int, tok token, isBytes bool) []jen.Code {
	ranges := validRanges(tok.Ranges)

	// A class whose ranges are all reversed matches no character, so
	// the affirmative form always fails and the negated form degrades
	// to a single-character wildcard.
	if len(ranges) == 0 {
		if tok.Negated {
			return c.generateSingleToken(label, id, isBytes)
		}
		return []jen.Code{
			label,
			jen.Block(jen.Goto().Id(codegen.TryFallbackName)),
		}
	}

	return []jen.Code{
		label,
		jen.Block(
			jen.If(jen.Id(codegen.InputLenName).Op("<=").Id(codegen.OffsetName)).Block(
				jen.Goto().Id(codegen.TryFallbackName),
			),
			jen.List(jen.Id("r"), jen.Id("w")).Op(":=").Add(c.decodeAtOffset(isBytes)),
			jen.If(classFailCondition(ranges, tok.Negated)).Block(
				jen.Goto().Id(codegen.TryFallbackName),
			),
			jen.Id(codegen.OffsetName).Op("+=").Id("w"),
			jen.Goto().Id(codegen.InstructionName(id+1)),
		),
	}
}

// generateDone generates the final check: the whole name must be
// consumed once the token list is exhausted.
func (c *Compiler) generateDone() []jen.Code {
	return []jen.Code{
		jen.Id(codegen.InstructionName(len(c.tokens))).Op(":"),
		jen.Block(
			jen.If(jen.Id(codegen.OffsetName).Op("==").Id(codegen.InputLenName)).Block(
				jen.Return(jen.True()),
			),
			jen.Goto().Id(codegen.TryFallbackName),
		),
	}
}

// generateFallback generates the backtracking logic: widen the active
// sequence wildcard by one character and resume just past it, or fail
// when no wildcard is active or the separator blocks the widening.
func (c *Compiler) generateFallback(isBytes bool) []jen.Code {
	var decl *jen.Statement
	widen := jen.Id("w").Op(">").Lit(0)
	if c.config.Separator != 0 {
		decl = jen.List(jen.Id("r"), jen.Id("w")).Op(":=").Add(c.decodeAt(codegen.StarOffsetName, isBytes))
		widen = widen.Op("&&").Id("r").Op("!=").LitRune(c.config.Separator)
	} else {
		decl = jen.List(jen.Id("_"), jen.Id("w")).Op(":=").Add(c.decodeAt(codegen.StarOffsetName, isBytes))
	}

	return []jen.Code{
		jen.Id(codegen.TryFallbackName).Op(":"),
		jen.If(jen.Id(codegen.StarInstructionName).Op(">=").Lit(0)).Block(
			decl,
			jen.If(widen).Block(
				jen.Id(codegen.StarOffsetName).Op("+=").Id("w"),
				jen.Id(codegen.OffsetName).Op("=").Id(codegen.StarOffsetName),
				jen.Id(codegen.NextInstructionName).Op("=").Id(codegen.StarInstructionName),
				jen.Goto().Id(codegen.StepSelectName),
			),
		),
		jen.Return(jen.False()),
	}
}

// decodeAtOffset returns a utf8 decode call at the current offset.
func (c *Compiler) decodeAtOffset(isBytes bool) *jen.Statement {
	return c.decodeAt(codegen.OffsetName, isBytes)
}

// decodeAt returns a utf8 decode call at the named offset variable.
func (c *Compiler) decodeAt(offsetName string, isBytes bool) *jen.Statement {
	fn := "DecodeRuneInString"
	if isBytes {
		fn = "DecodeRune"
	}
	return jen.Qual("unicode/utf8", fn).Call(
		jen.Id(codegen.InputName).Index(jen.Id(offsetName).Op(":")),
	)
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
