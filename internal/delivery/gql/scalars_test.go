package gql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"https://github.com/Urigo/graphql-scalars/", "https://github.com/Urigo/graphql-scalars/"},
		{"http://example.com/path?q=1", "http://example.com/path?q=1"},
		{"notaurl", nil},
		{"example.com/no-scheme", nil},
		{"", nil},
		{"https://", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseURL(tt.input), "input %q", tt.input)
	}
}

func TestURLScalarSerialize(t *testing.T) {
	assert.Equal(t, "https://example.com", urlScalar.Serialize("https://example.com"))
	assert.Nil(t, urlScalar.Serialize(42))
}
