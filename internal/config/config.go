// Package config loads filter profiles: YAML files holding default values
// for the command-line options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile is returned for a profile that cannot be decoded.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile holds option defaults. Nil pointers mean "not set".
type Profile struct {
	Input     string   `yaml:"input"`
	Output    string   `yaml:"output"`
	Delimiter *string  `yaml:"delimiter"`
	QuoteChar *string  `yaml:"quotechar"`
	NoHeader  *bool    `yaml:"no_header"`
	Verbose   *bool    `yaml:"verbose"`
	Filters   []string `yaml:"filters"`
}

// Load reads and decodes the profile at path. Unknown keys are rejected.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile. An empty document yields an empty profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return &p, nil
}

// Flag names shared by the command line and Apply.
const (
	FlagInput     = "input"
	FlagOutput    = "output"
	FlagDelimiter = "delimiter"
	FlagQuoteChar = "quotechar"
	FlagNoHeader  = "no-header"
	FlagVerbose   = "verbose"
	FlagFilter    = "and"
)

// Settings are the effective option values for one run.
type Settings struct {
	Input     string
	Output    string
	Delimiter string
	QuoteChar string
	NoHeader  bool
	Verbose   bool
	Filters   []string
}

// Apply copies profile values into s for every option the user did not set
// explicitly. Profile filters are placed ahead of the explicit ones.
func (p *Profile) Apply(s *Settings, changed func(flag string) bool) {
	if p.Input != "" && !changed(FlagInput) {
		s.Input = p.Input
	}
	if p.Output != "" && !changed(FlagOutput) {
		s.Output = p.Output
	}
	if p.Delimiter != nil && !changed(FlagDelimiter) {
		s.Delimiter = *p.Delimiter
	}
	if p.QuoteChar != nil && !changed(FlagQuoteChar) {
		s.QuoteChar = *p.QuoteChar
	}
	if p.NoHeader != nil && !changed(FlagNoHeader) {
		s.NoHeader = *p.NoHeader
	}
	if p.Verbose != nil && !changed(FlagVerbose) {
		s.Verbose = *p.Verbose
	}
	if len(p.Filters) > 0 {
		s.Filters = append(append([]string{}, p.Filters...), s.Filters...)
	}
}
