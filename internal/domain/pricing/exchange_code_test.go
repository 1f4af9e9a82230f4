package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/domain/pricing"
)

func TestParseExchangeCode(t *testing.T) {
	tests := []struct {
		code     string
		expected pricing.PriceKey
	}{
		{"PP30D_UNIVERSE", pricing.PriceKey{ExchangeCode: "PP30D_UNIVERSE", Field: pricing.FieldPriceAverage}},
		{"PP7D_AI1", pricing.PriceKey{ExchangeCode: "PP7D_AI1", Field: pricing.FieldPriceAverage}},
		{"AI1", pricing.PriceKey{ExchangeCode: "AI1", Field: pricing.FieldPriceAverage}},
		{"AI1_BUY", pricing.PriceKey{ExchangeCode: "AI1", Field: pricing.FieldAsk}},
		{"AI1_SELL", pricing.PriceKey{ExchangeCode: "AI1", Field: pricing.FieldBid}},
		{"AI1_AVG", pricing.PriceKey{ExchangeCode: "AI1", Field: pricing.FieldPriceAverage}},
		{"FOO_UNIVERSE", pricing.PriceKey{ExchangeCode: "FOO_UNIVERSE", Field: pricing.FieldPriceAverage}},
		// unknown two-part codes fall back to the universal default
		{"FOO_MOO", pricing.PriceKey{ExchangeCode: "PP30D_UNIVERSE", Field: pricing.FieldPriceAverage}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			key, err := pricing.ParseExchangeCode(tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestParseExchangeCode_TooManySegments(t *testing.T) {
	_, err := pricing.ParseExchangeCode("FOO_MOO_MEOW")

	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrMalformedExchangeCode)

	var codeErr *pricing.ExchangeCodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "FOO_MOO_MEOW", codeErr.Code)
}
