package pricing

import (
	"fmt"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
)

// ExchangeLookup resolves an exchange ticker id ("<MAT>.<CODE>") to its
// price record.
type ExchangeLookup interface {
	Exchange(tickerID string) (*gamedata.Exchange, error)
}

// BuildingLookup resolves a building ticker to its reference definition.
type BuildingLookup interface {
	Building(ticker string) (*gamedata.Building, error)
}

// Resolver resolves material prices through the layered preference chain:
// the selected CX configuration's empire entries first, then its per-planet
// preferences, then the universal 30 day average. Price lookups feed cost
// estimates, not correctness-critical state, so every miss degrades to 0
// instead of failing.
type Resolver struct {
	exchanges ExchangeLookup
	cx        *CX
	cxMissing bool
	planetID  string
}

// NewResolver builds a resolver for one price-source selection. A selected
// but unknown CX id is remembered and resolves every price to 0.
func NewResolver(exchanges ExchangeLookup, cxs CXProvider, sel Selection) *Resolver {
	r := &Resolver{exchanges: exchanges, planetID: sel.PlanetID}

	if sel.CXID != "" {
		if cxs == nil {
			r.cxMissing = true
			return r
		}
		cx, err := cxs.CX(sel.CXID)
		if err != nil || cx == nil {
			r.cxMissing = true
			return r
		}
		r.cx = cx
	}

	return r
}

// Price resolves the unit price for one material and trade direction.
// First match wins: CX empire entry, CX planet preference, universal
// average. Returns 0 when nothing resolves.
func (r *Resolver) Price(ticker string, direction Direction) float64 {
	if r.cxMissing {
		return 0
	}

	if r.cx != nil {
		for _, entry := range r.cx.Empire {
			if entry.Matches(ticker, direction) {
				return r.entryPrice(ticker, entry)
			}
		}

		if planet := r.cx.Planet(r.planetID); planet != nil {
			for _, entry := range planet.Entries {
				if entry.Matches(ticker, direction) {
					return r.entryPrice(ticker, entry)
				}
			}
			if planet.Code != "" {
				return r.codePrice(ticker, planet.Code)
			}
		}
	}

	return r.codePrice(ticker, DefaultExchangeCode)
}

// entryPrice resolves one CX entry: fixed price wins over pricing code.
func (r *Resolver) entryPrice(ticker string, entry CXEntry) float64 {
	if entry.Price != nil {
		return *entry.Price
	}
	return r.codePrice(ticker, entry.Code)
}

// codePrice resolves a ticker against a pricing code. Unparseable codes and
// missing exchange rows resolve to 0.
func (r *Resolver) codePrice(ticker string, code string) float64 {
	key, err := ParseExchangeCode(code)
	if err != nil {
		return 0
	}

	exchange, err := r.exchanges.Exchange(fmt.Sprintf("%s.%s", ticker, key.ExchangeCode))
	if err != nil || exchange == nil {
		return 0
	}

	switch key.Field {
	case FieldAsk:
		return exchange.Ask
	case FieldBid:
		return exchange.Bid
	default:
		return exchange.PriceAverage
	}
}

// MaterialIOTotalPrice values a flow bundle at one trade direction: the sum
// of (output-input) times unit price, negative when the bundle is a net buy.
func (r *Resolver) MaterialIOTotalPrice(items []materialio.Minimal, direction Direction) float64 {
	var total float64
	for _, item := range items {
		total += (item.Output - item.Input) * r.Price(item.Ticker, direction)
	}
	return total
}

// EnhanceWithPrices attaches a price to each material flow. Direction
// follows the sign of the delta: a net consumer buys, a net producer sells.
func (r *Resolver) EnhanceWithPrices(items []materialio.Material) []materialio.PricedMaterial {
	priced := make([]materialio.PricedMaterial, 0, len(items))
	for _, item := range items {
		direction := DirectionSell
		if item.Delta < 0 {
			direction = DirectionBuy
		}
		priced = append(priced, materialio.PricedMaterial{
			Material: item,
			Price:    item.Delta * r.Price(item.Ticker, direction),
		})
	}
	return priced
}

// InfrastructureCosts values the construction bill of one unit of every
// infrastructure building with a non-zero configured amount, at buy prices.
// Each figure is positive.
func (r *Resolver) InfrastructureCosts(
	amounts map[gamedata.InfrastructureType]int,
	buildings BuildingLookup,
) (map[gamedata.InfrastructureType]float64, error) {
	costs := make(map[gamedata.InfrastructureType]float64)

	for _, infra := range gamedata.InfrastructureTypes {
		if amounts[infra] == 0 {
			continue
		}

		building, err := buildings.Building(string(infra))
		if err != nil {
			return nil, fmt.Errorf("infrastructure costs for %s: %w", infra, err)
		}

		bill := make([]materialio.Minimal, 0, len(building.Costs))
		for _, cost := range building.Costs {
			bill = append(bill, materialio.Minimal{Ticker: cost.Ticker, Input: cost.Amount})
		}

		costs[infra] = -r.MaterialIOTotalPrice(bill, DirectionBuy)
	}

	return costs, nil
}
