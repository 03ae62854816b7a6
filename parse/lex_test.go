package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain words", input: "one two three", want: []string{"one", "two", "three"}},
		{name: "double quotes", input: `say "hello world"`, want: []string{"say", "hello world"}},
		{name: "single quotes", input: "say 'hello world'", want: []string{"say", "hello world"}},
		{name: "quoted option value", input: `--msg="a b"`, want: []string{"--msg=a b"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`say "unterminated`)
	assert.NotNil(t, err)
}
