package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yandex/haversine-workbench/internal/jsonio/loc"
	"github.com/yandex/haversine-workbench/internal/jsonio/view"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	v := view.New([]byte(src))
	at := loc.Start()
	var tokens []Token
	for {
		result := NextToken(v, at)
		if !result.IsOk() {
			// Either a real lexical error or a clean end-of-stream after
			// trailing whitespace; callers that expect an error check
			// NextToken directly instead of going through this helper.
			break
		}
		tok, _ := result.Unwrap()
		tokens = append(tokens, tok)
		at = tok.End
	}
	return tokens
}

func TestNextToken_ObjectWithNegativeDecimal(t *testing.T) {
	tokens := tokenize(t, `{"a":-12.5}`)

	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []Kind{OpenObject, StringLiteral, Assign, DecimalLiteral, CloseObject}, kinds)
	require.Equal(t, "a", tokens[1].Text)
	require.InDelta(t, -12.5, tokens[3].Number, 1e-12)
}

func TestNextToken_WhitespaceDoesNotChangeTokenSequence(t *testing.T) {
	tight := tokenize(t, `{"a":1}`)
	spaced := tokenize(t, "  {  \"a\"  :  1  }  ")

	require.Equal(t, len(tight), len(spaced))
	for i := range tight {
		require.Equal(t, tight[i].Kind, spaced[i].Kind)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	result := NextToken(view.New([]byte(`"a\nb\tc\"d"`)), loc.Start())
	require.True(t, result.IsOk())
	tok, _ := result.Unwrap()
	require.Equal(t, "a\nb\tc\"d", tok.Text)
}

func TestNextToken_InvalidEscapeIsError(t *testing.T) {
	result := NextToken(view.New([]byte(`"a\qb"`)), loc.Start())
	require.False(t, result.IsOk())
}

func TestNextToken_WhitespaceInsideStringIsError(t *testing.T) {
	result := NextToken(view.New([]byte("\"a\tb\"")), loc.Start())
	require.False(t, result.IsOk())
}

func TestNextToken_LeadingPlusIsError(t *testing.T) {
	result := NextToken(view.New([]byte("+5")), loc.Start())
	require.False(t, result.IsOk())
}

func TestNextToken_Keywords(t *testing.T) {
	for src, kind := range map[string]Kind{"true": TrueLiteral, "false": FalseLiteral, "null": NullLiteral} {
		result := NextToken(view.New([]byte(src)), loc.Start())
		require.True(t, result.IsOk())
		tok, _ := result.Unwrap()
		require.Equal(t, kind, tok.Kind)
	}
}

func TestNextToken_UnknownKeywordNamesPrefix(t *testing.T) {
	result := NextToken(view.New([]byte("nul")), loc.Start())
	require.False(t, result.IsOk())
	require.Contains(t, result.Err().Error(), "nul")
}

func TestNextToken_IntegerVsDecimal(t *testing.T) {
	intResult := NextToken(view.New([]byte("42")), loc.Start())
	require.True(t, intResult.IsOk())
	intTok, _ := intResult.Unwrap()
	require.Equal(t, IntegerLiteral, intTok.Kind)
	require.Equal(t, float64(42), intTok.Number)

	decResult := NextToken(view.New([]byte("42.0")), loc.Start())
	require.True(t, decResult.IsOk())
	decTok, _ := decResult.Unwrap()
	require.Equal(t, DecimalLiteral, decTok.Kind)
}

func TestNextToken_InvalidCharacter(t *testing.T) {
	result := NextToken(view.New([]byte("@")), loc.Start())
	require.False(t, result.IsOk())
	require.Contains(t, result.Err().Error(), "@")
}
