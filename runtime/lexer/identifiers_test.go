package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/clex/core/token"
)

func TestBasicIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "simple_identifier",
			input: "myVar",
			expected: []tokenExpectation{
				{`Identifier("myVar")`, 0, 5},
			},
		},
		{
			name:  "underscore_identifier",
			input: "my_var",
			expected: []tokenExpectation{
				{`Identifier("my_var")`, 0, 6},
			},
		},
		{
			name:  "number_suffix",
			input: "var123",
			expected: []tokenExpectation{
				{`Identifier("var123")`, 0, 6},
			},
		},
		{
			name:  "underscore_start",
			input: "__func__",
			expected: []tokenExpectation{
				{`Identifier("__func__")`, 0, 8},
			},
		},
		{
			name:  "keyword_spelling_stays_identifier",
			input: "int",
			expected: []tokenExpectation{
				{`Identifier("int")`, 0, 3},
			},
		},
		{
			name:  "hyphen_splits",
			input: "a-b",
			expected: []tokenExpectation{
				{`Identifier("a")`, 0, 1},
				{"Punctuator(Minus)", 1, 2},
				{`Identifier("b")`, 2, 3},
			},
		},
		{
			name:  "non_ascii_splits",
			input: "abcé",
			expected: []tokenExpectation{
				{`Identifier("abc")`, 0, 3},
				{"NonWhiteSpaceCharacter('é')", 3, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestIdentifierTextMatchesSpan(t *testing.T) {
	input := "unsigned long long _x1 y_2_ Z\tq"

	for _, tok := range Preprocess(input) {
		if tok.Kind != token.PPIdentifier {
			continue
		}
		assert.Equal(t, input[tok.Start:tok.End], tok.Text)
	}
}

func TestDigitLeadIsNotAnIdentifier(t *testing.T) {
	var diags DiagnosticCollector
	tokens := Preprocess("1abc", WithDiagnostics(&diags))

	require.Len(t, tokens, 2)
	assert.Equal(t, "NonWhiteSpaceCharacter('1')", tokens[0].String())
	assert.Equal(t, `Identifier("abc")`, tokens[1].String())
	assert.Equal(t, 1, diags.Len())
}
