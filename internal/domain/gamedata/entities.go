package gamedata

// MaterialAmount is a quantity of one material, used for recipe inputs and
// outputs and for building construction costs.
type MaterialAmount struct {
	Ticker string
	Amount float64
}

// Material is an immutable reference material definition.
type Material struct {
	Ticker   string
	Name     string
	Category string
	Weight   float64
	Volume   float64
}

// Building is an immutable reference building definition. Workforce holds
// the population demand per tier for one unit of the building.
type Building struct {
	Ticker    string
	Name      string
	Expertise ExpertType
	Workforce map[WorkforceType]int
	AreaCost  int
	Costs     []MaterialAmount
}

// WorkforceDemand returns the demand for one tier, 0 when the building does
// not employ it.
func (b *Building) WorkforceDemand(t WorkforceType) int {
	return b.Workforce[t]
}

// DominantWorkforce returns the tier with the highest demand, in canonical
// tier order on ties. Returns false when the building employs nobody.
func (b *Building) DominantWorkforce() (WorkforceType, bool) {
	var best WorkforceType
	bestCount := 0
	for _, t := range WorkforceTypes {
		if b.Workforce[t] > bestCount {
			best = t
			bestCount = b.Workforce[t]
		}
	}
	return best, bestCount > 0
}

// Recipe is an immutable reference recipe definition. TimeMs is the duration
// of one production cycle in milliseconds.
type Recipe struct {
	RecipeID       string
	BuildingTicker string
	TimeMs         int64
	Inputs         []MaterialAmount
	Outputs        []MaterialAmount
}

// Exchange is one priced material on one market. TickerID has the shape
// "<MAT>.<CODE>", e.g. "LSE.AI1" or "LSE.PP30D_UNIVERSE".
type Exchange struct {
	TickerID     string
	Ask          float64
	Bid          float64
	PriceAverage float64
}

// ResourceType classifies a planetary resource deposit.
type ResourceType string

const (
	ResourceMineral ResourceType = "MINERAL"
	ResourceLiquid  ResourceType = "LIQUID"
	ResourceGaseous ResourceType = "GASEOUS"
)

// PlanetResource is one extractable deposit on a planet. Factor is the
// concentration in [0,1].
type PlanetResource struct {
	Ticker string
	Type   ResourceType
	Factor float64
}

// Planet is an immutable reference planet definition. Surface is true for
// rocky planets; the environment fields drive additional construction
// material requirements.
type Planet struct {
	NaturalID   string
	Name        string
	Resources   []PlanetResource
	Surface     bool
	Gravity     float64
	Pressure    float64
	Temperature float64
	COGCProgram COGCProgram
}
