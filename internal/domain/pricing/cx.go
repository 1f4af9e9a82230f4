package pricing

// Direction is the trade direction a price is resolved for.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// CXEntry is one material preference inside a CX configuration: either a
// fixed price or a pricing code to resolve. Direction "" applies to both
// trade directions.
type CXEntry struct {
	Ticker    string
	Direction Direction
	Price     *float64
	Code      string
}

// Matches reports whether the entry applies to a ticker and direction.
func (e CXEntry) Matches(ticker string, direction Direction) bool {
	return e.Ticker == ticker && (e.Direction == "" || e.Direction == direction)
}

// CXPlanet is a per-planet preference block inside a CX configuration:
// material overrides first, then an optional planet-wide pricing code.
type CXPlanet struct {
	PlanetID string
	Entries  []CXEntry
	Code     string
}

// CX is a named, user-curated exchange-price configuration selecting
// preferred markets and overrides per material.
type CX struct {
	UUID    string
	Name    string
	Empire  []CXEntry
	Planets []CXPlanet
}

// Planet returns the preference block for a planet, nil when absent.
func (c *CX) Planet(planetID string) *CXPlanet {
	for i := range c.Planets {
		if c.Planets[i].PlanetID == planetID {
			return &c.Planets[i]
		}
	}
	return nil
}

// CXProvider resolves a CX configuration by its uuid.
type CXProvider interface {
	CX(uuid string) (*CX, error)
}

// CXSet is an in-memory CXProvider, hydrated once per session.
type CXSet map[string]*CX

// CX implements CXProvider.
func (s CXSet) CX(uuid string) (*CX, error) {
	cx, ok := s[uuid]
	if !ok {
		return nil, ErrCXNotFound
	}
	return cx, nil
}

// Selection is the active price-source choice: which CX configuration to
// consult and which planet's preferences apply. Both are optional; with
// neither set, every lookup resolves through the universal default.
type Selection struct {
	CXID     string
	PlanetID string
}
