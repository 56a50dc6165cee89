package shellglob

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialization round-trips patterns through their source text and
// always re-enters the validating constructor on the way in, so a
// decoded Pattern carries the same guarantee as a compiled one and a
// malformed document surfaces as a decode error.
//
// The separator is not part of the wire form; decode into a zero
// Pattern for default semantics and set options in code.

// MarshalText implements encoding.TextMarshaler. encoding/json picks
// this up, so Pattern fields serialize as plain JSON strings.
func (p *Pattern) MarshalText() ([]byte, error) {
	return []byte(p.source), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	compiled, err := Compile(string(text))
	if err != nil {
		return err
	}
	*p = *compiled
	return nil
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 ignores the encoding
// interfaces, so the YAML pair is spelled out separately.
func (p *Pattern) MarshalYAML() (interface{}, error) {
	return p.source, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var source string
	if err := value.Decode(&source); err != nil {
		return fmt.Errorf("shellglob: pattern must be a string: %w", err)
	}
	return p.UnmarshalText([]byte(source))
}
