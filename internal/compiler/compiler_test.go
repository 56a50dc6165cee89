package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func generateToString(t *testing.T, config Config) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "matcher.go")
	c := New(config)
	c.SetOutputFile(path)
	if err := c.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	return string(src)
}

func TestGenerateShape(t *testing.T) {
	src := generateToString(t, Config{
		Pattern: "a*b?c[0-9]",
		Name:    "Asset",
		Package: "assets",
	})

	for _, want := range []string{
		"// Code generated by globgen for pattern: a*b?c[0-9]",
		"// DO NOT EDIT.",
		"package assets",
		"type Asset struct{}",
		"var CompiledAsset = Asset{}",
		"func (Asset) MatchString(input string) bool",
		"func (Asset) MatchBytes(input []byte) bool",
		"StepSelect:",
		"TryFallback:",
		"strings.HasPrefix",
		"bytes.HasPrefix",
		"utf8.DecodeRuneInString",
		"utf8.DecodeRune(",
		"'0' <= r && r <= '9'",
		"return false",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source misses %q", want)
		}
	}
}

func TestGenerateExportsName(t *testing.T) {
	src := generateToString(t, Config{
		Pattern: "*",
		Name:    "asset",
		Package: "assets",
	})
	if !strings.Contains(src, "var CompiledAsset = Asset{}") {
		t.Error("a lower-case name must be exported in the generated code")
	}
}

func TestGenerateLabelsDispatch(t *testing.T) {
	src := generateToString(t, Config{
		Pattern: "*x",
		Name:    "Suffix",
		Package: "main",
	})

	// Two tokens plus the done label, each reachable from the dispatch.
	for _, want := range []string{"Ins0:", "Ins1:", "Ins2:", "goto Ins0", "goto Ins1", "goto Ins2"} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source misses %q", want)
		}
	}
	if !strings.Contains(src, "switch nextInstruction") {
		t.Error("generated source misses the instruction dispatch switch")
	}
}

func TestGenerateSeparator(t *testing.T) {
	src := generateToString(t, Config{
		Pattern:   "a*/b",
		Name:      "Path",
		Package:   "main",
		Separator: '/',
	})
	if !strings.Contains(src, "r != '/'") {
		t.Error("separator-aware fallback must refuse to widen across '/'")
	}
}

func TestGenerateNegatedEmptyRangeDegradesToSingle(t *testing.T) {
	// '[^z-a]' can exclude nothing, so it compiles like '?'.
	src := generateToString(t, Config{
		Pattern: "[^z-a]",
		Name:    "Any",
		Package: "main",
	})
	if strings.Contains(src, "'z'") {
		t.Error("a reversed range must not survive into the generated code")
	}
	if !strings.Contains(src, "offset += w") {
		t.Error("negated empty class must consume one character")
	}
}

func TestGenerateTestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asset.go")
	c := New(Config{
		Pattern:          "*.png",
		Name:             "Asset",
		Package:          "assets",
		GenerateTestFile: true,
		TestFileInputs:   []string{"logo.png", "logo.jpg"},
	})
	c.SetOutputFile(path)
	if err := c.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	src, err := os.ReadFile(filepath.Join(dir, "asset_test.go"))
	if err != nil {
		t.Fatalf("reading generated test file: %v", err)
	}
	for _, want := range []string{
		"func TestAssetMatchString(t *testing.T)",
		"func TestAssetMatchBytes(t *testing.T)",
		"func BenchmarkAssetMatchString(b *testing.B)",
		`shellglob.MustCompile("*.png")`,
		`"logo.png", "logo.jpg"`,
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated test file misses %q", want)
		}
	}
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	c := New(Config{
		Pattern: "a*[0-9]?",
		Name:    "Noisy",
		Package: "main",
		Verbose: true,
	})
	c.logger.SetOutput(&buf)
	c.logTokens()

	out := buf.String()
	for _, want := range []string{"Pattern Analysis", "sequence wildcard", "single wildcard", "class negated=false terms=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output misses %q, got:\n%s", want, out)
		}
	}
}
