// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultInput is the header scanned when no input is configured.
const DefaultInput = "include/lightning.h.in"

// ExtractConfig holds settings for an extraction run.
type ExtractConfig struct {
	// Input is the path of the header to scan (default include/lightning.h.in).
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Trim removes whitespace between a function name and its opening
	// parenthesis. Off by default so output matches the historical tool.
	Trim bool `json:"trim" yaml:"trim" mapstructure:"trim"`

	// Verbose enables debug logging on stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// InputPath returns Input, or DefaultInput when Input is empty.
func (c ExtractConfig) InputPath() string {
	if c.Input == "" {
		return DefaultInput
	}
	return c.Input
}
