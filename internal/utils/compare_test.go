package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCompare(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		secret string
		want   bool
	}{
		{name: "equal", input: "s3cr3t", secret: "s3cr3t", want: true},
		{name: "both empty", input: "", secret: "", want: true},
		{name: "differ in last byte", input: "s3cr3t", secret: "s3cr3T", want: false},
		{name: "differ in first byte", input: "x3cr3t", secret: "s3cr3t", want: false},
		{name: "input is prefix of secret", input: "s3c", secret: "s3cr3t", want: false},
		{name: "secret is prefix of input", input: "s3cr3t!", secret: "s3cr3t", want: false},
		{name: "empty input", input: "", secret: "s3cr3t", want: false},
		{name: "empty secret", input: "s3cr3t", secret: "", want: false},
		{name: "unicode equal", input: "пароль", secret: "пароль", want: true},
		{name: "long equal", input: strings.Repeat("a", 4096), secret: strings.Repeat("a", 4096), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeCompare(tt.input, tt.secret))
		})
	}
}

func TestSafeCompare_Symmetric(t *testing.T) {
	pairs := [][2]string{{"a", "b"}, {"token", "token"}, {"", "x"}}
	for _, p := range pairs {
		assert.Equal(t, SafeCompare(p[0], p[1]), SafeCompare(p[1], p[0]), "pair %q", p)
	}
}
