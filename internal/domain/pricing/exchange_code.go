package pricing

import "strings"

// PriceField selects which side of an exchange entry a code refers to.
type PriceField string

const (
	FieldAsk          PriceField = "Ask"
	FieldBid          PriceField = "Bid"
	FieldPriceAverage PriceField = "PriceAverage"
)

// DefaultExchangeCode is the universal 30 day rolling average every price
// lookup falls back to.
const DefaultExchangeCode = "PP30D_UNIVERSE"

// PriceKey is the parsed form of a pricing code: which exchange table to
// read and which of its price fields.
type PriceKey struct {
	ExchangeCode string
	Field        PriceField
}

// ParseExchangeCode parses a pricing code of the shape <EXCHANGE> or
// <EXCHANGE>_<SUFFIX>.
//
// Composite rolling-average codes (PP7D_*, PP30D_*, *_UNIVERSE) stay whole
// and read the average. BUY/SELL/AVG suffixes select Ask/Bid/PriceAverage on
// the named exchange. Any other two-part code falls back to the universal
// default rather than failing; only a code with more than two segments is an
// error.
func ParseExchangeCode(code string) (PriceKey, error) {
	parts := strings.Split(code, "_")

	if len(parts) > 2 {
		return PriceKey{}, &ExchangeCodeError{Code: code, Reason: "too many segments"}
	}

	if len(parts) == 1 || isCompositePeriodCode(parts) {
		return PriceKey{ExchangeCode: code, Field: FieldPriceAverage}, nil
	}

	switch parts[1] {
	case "BUY":
		return PriceKey{ExchangeCode: parts[0], Field: FieldAsk}, nil
	case "SELL":
		return PriceKey{ExchangeCode: parts[0], Field: FieldBid}, nil
	case "AVG":
		return PriceKey{ExchangeCode: parts[0], Field: FieldPriceAverage}, nil
	}

	return PriceKey{ExchangeCode: DefaultExchangeCode, Field: FieldPriceAverage}, nil
}

// isCompositePeriodCode recognizes two-segment codes that name a rolling
// average table rather than an exchange plus direction, e.g. "PP7D_AI1",
// "PP30D_UNIVERSE" or "AI1_UNIVERSE".
func isCompositePeriodCode(parts []string) bool {
	return parts[0] == "PP7D" || parts[0] == "PP30D" || parts[1] == "UNIVERSE"
}
