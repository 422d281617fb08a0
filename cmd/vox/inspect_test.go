package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than max unchanged", in: "hello", max: 10, want: "hello"},
		{name: "exactly max unchanged", in: "hello", max: 5, want: "hello"},
		{name: "ascii truncated", in: "hello world", max: 5, want: "hello..."},
		{name: "multi-byte truncated on rune boundary", in: "ééééééééé", max: 4, want: "éééé..."},
		{name: "multi-byte within max unchanged", in: "éééé", max: 5, want: "éééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
