package plan

import (
	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

// ActiveRecipe is one running recipe on a building: which recipe and how
// many parallel production lines.
type ActiveRecipe struct {
	RecipeID string
	Amount   int
}

// Building is one production building entry in a draft, with its unit count
// and the recipes it runs. Order inside a draft is user-defined and
// preserved through serialization.
type Building struct {
	Name          string
	Amount        int
	ActiveRecipes []ActiveRecipe
}

// Luxuries holds the two luxury supply flags of one workforce tier.
type Luxuries struct {
	Lux1 bool
	Lux2 bool
}

// Draft is the mutable editable state of one plan. It is owned by a single
// editing session and mutated only through Handlers; everything derived from
// it lives in the calculation result.
//
// Workforce and Experts always hold one entry per tier/specialization;
// Infrastructure is sparse with absent meaning zero.
type Draft struct {
	UUID     string // empty for a plan without persisted identity
	Name     string
	PlanetID string

	CorpHQ  bool
	COGC    gamedata.COGCProgram
	Permits int

	Workforce      map[gamedata.WorkforceType]Luxuries
	Experts        map[gamedata.ExpertType]int
	Infrastructure map[gamedata.InfrastructureType]int
	Buildings      []Building

	OverrideEmpire bool
	EmpireUUID     string
	Faction        string
}

// NewDraft creates an empty draft for a planet with defaults: one permit, no
// COGC program, all workforce tiers present without luxuries, all expert
// counts zero.
func NewDraft(planetID string) *Draft {
	d := &Draft{
		PlanetID:       planetID,
		COGC:           gamedata.COGCNone,
		Permits:        gamedata.PermitMin,
		Workforce:      make(map[gamedata.WorkforceType]Luxuries, len(gamedata.WorkforceTypes)),
		Experts:        make(map[gamedata.ExpertType]int, len(gamedata.ExpertTypes)),
		Infrastructure: make(map[gamedata.InfrastructureType]int),
		Buildings:      make([]Building, 0),
		Faction:        "NONE",
	}

	for _, t := range gamedata.WorkforceTypes {
		d.Workforce[t] = Luxuries{}
	}
	for _, e := range gamedata.ExpertTypes {
		d.Experts[e] = 0
	}

	return d
}

// Existing reports whether the draft has a persisted identity.
func (d *Draft) Existing() bool {
	return d.UUID != ""
}
