// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

type lineCase struct {
	Name    string  `yaml:"name"`
	Line    string  `yaml:"line"`
	Match   bool    `yaml:"match"`
	Want    string  `yaml:"want"`
	Trimmed *string `yaml:"trimmed"`
}

func loadCases(t *testing.T) []lineCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	var doc struct {
		Cases []lineCase `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Cases)
	return doc.Cases
}

func TestExtract(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			got, ok := Extract(tc.Line)
			assert.Equal(t, tc.Match, ok)
			if tc.Match {
				assert.Equal(t, tc.Want, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestExtractTrimmed(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			want := tc.Want
			if tc.Trimmed != nil {
				want = *tc.Trimmed
			}
			got, ok := ExtractTrimmed(tc.Line)
			assert.Equal(t, tc.Match, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestExtractTrimmedWhitespaceOnlyCapture(t *testing.T) {
	raw, ok := Extract("extern int   (void);")
	require.True(t, ok)
	assert.Equal(t, " ", raw)

	_, ok = ExtractTrimmed("extern int   (void);")
	assert.False(t, ok, "a whitespace-only name is not a match once trimmed")
}

func TestExtractRequiresLineStart(t *testing.T) {
	lines := []string{
		" extern int foo(void);",
		"\textern int foo(void);",
		"static extern int foo(void);",
		"#define X extern int foo(void);",
	}
	for _, line := range lines {
		_, ok := Extract(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestTrimEOL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"extern int foo(void);\n", "extern int foo(void);"},
		{"extern int foo(void);\r\n", "extern int foo(void);"},
		{"extern int foo(void);", "extern int foo(void);"},
		{"\n", ""},
		{"trailing\r\r\n", "trailing\r"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trimEOL(tt.in), "input %q", tt.in)
	}
}
