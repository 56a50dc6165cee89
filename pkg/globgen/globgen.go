// Package globgen provides glob-to-Go code generation functionality.
// It compiles shell glob patterns into standalone matcher functions at
// build time, validated with exactly the rules of package shellglob.
package globgen

import (
	"fmt"

	"github.com/shellglob/shellglob"
	"github.com/shellglob/shellglob/internal/compiler"
)

// Options configures the glob compilation process.
type Options struct {
	// Pattern is the glob pattern to compile. The empty pattern is
	// valid and matches only the empty name.
	Pattern string

	// Name is the prefix for generated identifiers (e.g., "Asset" generates "AssetMatchString")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Separator makes '*' and '?' stop at the given rune, as with
	// shellglob.WithSeparator (0 keeps the default: wildcards match everything)
	Separator rune

	// GenerateTestFile generates a test file comparing the generated matcher
	// against the runtime engine (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of test inputs for the generated test file
	TestFileInputs []string

	// Verbose enables generation logging to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Compile generates Go code for the given glob pattern.
// It returns an error if the pattern is invalid or code generation fails.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	// Validate through the same constructor every runtime pattern goes
	// through, so a malformed literal fails the generation step with
	// the runtime's own syntax error.
	var compileOpts []shellglob.Option
	if opts.Separator != 0 {
		compileOpts = append(compileOpts, shellglob.WithSeparator(opts.Separator))
	}
	if _, err := shellglob.Compile(opts.Pattern, compileOpts...); err != nil {
		return err
	}

	config := compiler.Config{
		Pattern:          opts.Pattern,
		Name:             opts.Name,
		Package:          opts.Package,
		Separator:        opts.Separator,
		GenerateTestFile: opts.GenerateTestFile || len(opts.TestFileInputs) > 0,
		TestFileInputs:   opts.TestFileInputs,
		Verbose:          opts.Verbose,
	}

	c := compiler.New(config)
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
