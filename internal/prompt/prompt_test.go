package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		def   bool
		want  bool
	}{
		"explicit yes":            {input: "y\n", def: false, want: true},
		"explicit full yes":       {input: "yes\n", def: false, want: true},
		"explicit no":             {input: "n\n", def: true, want: false},
		"empty takes default yes": {input: "\n", def: true, want: true},
		"empty takes default no":  {input: "\n", def: false, want: false},
		"garbage takes default":   {input: "maybe\n", def: true, want: true},
		"eof takes default":       {input: "", def: false, want: false},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, p.Confirm("Continue?", tt.def))
			assert.Contains(t, out.String(), "Continue?")
		})
	}
}

func TestInput(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		def   string
		want  string
	}{
		"value entered":      {input: "github\n", def: "origin", want: "github"},
		"empty uses default": {input: "\n", def: "origin", want: "origin"},
		"whitespace trimmed": {input: "  gitlab  \n", def: "", want: "gitlab"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, p.Input("Remote", tt.def))
		})
	}
}

func TestSelectOne(t *testing.T) {
	t.Parallel()

	options := []string{"alpha", "beta", "gamma"}

	tests := map[string]struct {
		input string
		def   int
		want  int
	}{
		"first option":           {input: "1\n", def: 0, want: 0},
		"last option":            {input: "3\n", def: 0, want: 2},
		"empty takes default":    {input: "\n", def: 1, want: 1},
		"invalid then valid":     {input: "9\n2\n", def: 0, want: 1},
		"non-numeric then valid": {input: "x\n3\n", def: 0, want: 2},
		"out-of-range default":   {input: "\n", def: 7, want: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, p.SelectOne("Pick one", options, tt.def))
		})
	}
}

func TestBuildEntry(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  string // rendered via Entry.String
	}{
		"title only, no type prefix": {
			input: "n\nAdd parser\n\n",
			want:  "Add parser",
		},
		"typed title with body": {
			input: "y\n2\nhandle empty input\nfirst detail\nsecond detail\n\n",
			want:  "fix: handle empty input\n\n- first detail\n- second detail",
		},
		"empty title coerced to placeholder": {
			input: "n\n\n",
			want:  "Normal Update",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			entry := p.BuildEntry()
			assert.Equal(t, tt.want, entry.String())
		})
	}
}
