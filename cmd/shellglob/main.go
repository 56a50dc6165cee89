// Command shellglob matches names against shell glob patterns and
// generates standalone Go matchers for them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shellglob/shellglob"
	"github.com/shellglob/shellglob/pkg/globgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shellglob",
		Short:        "Shell glob pattern matching and code generation",
		SilenceUsage: true,
	}
	root.AddCommand(newGenCmd(), newMatchCmd())
	return root
}

func newGenCmd() *cobra.Command {
	var (
		pattern    string
		name       string
		output     string
		pkg        string
		separator  string
		testInputs []string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Go matcher for a glob pattern",
		Long: `Generate a standalone Go matcher for a glob pattern.

The pattern is validated first; generation fails with the syntax error
for a malformed pattern, so a go:generate step catches bad literals
before the program runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := globgen.Options{
				Pattern:        pattern,
				Name:           name,
				OutputFile:     output,
				Package:        pkg,
				TestFileInputs: testInputs,
				Verbose:        verbose,
			}
			sep, err := parseSeparator(separator)
			if err != nil {
				return err
			}
			opts.Separator = sep
			return globgen.Compile(opts)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "glob pattern to compile")
	cmd.Flags().StringVarP(&name, "name", "n", "", "prefix for generated identifiers")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&pkg, "package", "", "package name for the generated code")
	cmd.Flags().StringVar(&separator, "separator", "", "character '*' and '?' must not cross")
	cmd.Flags().StringSliceVar(&testInputs, "test-inputs", nil, "inputs for a generated test file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generation decisions to stderr")
	for _, required := range []string{"name", "output", "package"} {
		if err := cmd.MarkFlagRequired(required); err != nil {
			panic(err)
		}
	}
	return cmd
}

func newMatchCmd() *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   "match PATTERN NAME...",
		Short: "Match names against a glob pattern",
		Long: `Compile PATTERN once and print every NAME it matches.

Exits non-zero when the pattern is malformed or no name matched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []shellglob.Option
			sep, err := parseSeparator(separator)
			if err != nil {
				return err
			}
			if sep != 0 {
				opts = append(opts, shellglob.WithSeparator(sep))
			}
			p, err := shellglob.Compile(args[0], opts...)
			if err != nil {
				return err
			}
			matched := false
			for _, name := range args[1:] {
				if p.Matches(name) {
					matched = true
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			if !matched {
				return fmt.Errorf("no name matched %q", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&separator, "separator", "", "character '*' and '?' must not cross")
	return cmd
}

// parseSeparator turns the --separator flag value into a rune; the
// empty value means no separator.
func parseSeparator(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	return runes[0], nil
}
