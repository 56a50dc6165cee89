package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	out, err := execute("match", "*.log", "app.log", "app.txt", "server.log")
	require.NoError(t, err)
	assert.Equal(t, "app.log\nserver.log\n", out)
}

func TestMatchCommandSeparator(t *testing.T) {
	out, err := execute("match", "--separator", "/", "a*", "abc", "ab/c")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestMatchCommandNoMatch(t *testing.T) {
	_, err := execute("match", "*.log", "app.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no name matched "*.log"`)
}

func TestMatchCommandMalformedPattern(t *testing.T) {
	_, err := execute("match", "a[bc", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "character class is never closed")
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "asset.go")

	_, err := execute("gen",
		"--pattern", "*.png",
		"--name", "Asset",
		"--output", out,
		"--package", "assets",
	)
	require.NoError(t, err)

	src, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Contains(t, string(src), "func (Asset) MatchString(input string) bool")
}

func TestGenCommandMalformedPattern(t *testing.T) {
	dir := t.TempDir()
	_, err := execute("gen",
		"--pattern", `bad\`,
		"--name", "Bad",
		"--output", filepath.Join(dir, "bad.go"),
		"--package", "main",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `pattern ends after '\'`)
}

func TestGenCommandMissingFlags(t *testing.T) {
	_, err := execute("gen", "--pattern", "*")
	require.Error(t, err)
}

func TestParseSeparator(t *testing.T) {
	sep, err := parseSeparator("")
	require.NoError(t, err)
	assert.Equal(t, rune(0), sep)

	sep, err = parseSeparator("/")
	require.NoError(t, err)
	assert.Equal(t, '/', sep)

	sep, err = parseSeparator("☺")
	require.NoError(t, err)
	assert.Equal(t, '☺', sep)

	_, err = parseSeparator("ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}
