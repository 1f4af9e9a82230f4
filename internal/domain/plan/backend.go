package plan

import (
	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

// BackendData is the canonical plan serialization used for persistence and
// sharing. Infrastructure, experts and workforce are always fully populated
// in fixed enum order; buildings preserve draft order.
type BackendData struct {
	Name           string                  `json:"name"`
	PlanetID       string                  `json:"planet_id"`
	PermitsTotal   int                     `json:"permits_total"`
	PermitsUsed    int                     `json:"permits_used"`
	OverrideEmpire bool                    `json:"override_empire"`
	EmpireUUID     *string                 `json:"empire_uuid"`
	Faction        string                  `json:"faction"`
	Planet         BackendPlanet           `json:"planet"`
	Infrastructure []BackendInfrastructure `json:"infrastructure"`
	Buildings      []BackendBuilding       `json:"buildings"`
}

// BackendPlanet is the planet block of the canonical serialization.
type BackendPlanet struct {
	PlanetID  string             `json:"planetid"`
	COGC      string             `json:"cogc"`
	CorpHQ    bool               `json:"corphq"`
	Permits   int                `json:"permits"`
	Experts   []BackendExpert    `json:"experts"`
	Workforce []BackendWorkforce `json:"workforce"`
}

// BackendExpert is one expert entry, present for every specialization.
type BackendExpert struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// BackendWorkforce is one workforce entry, present for every tier.
type BackendWorkforce struct {
	Type string `json:"type"`
	Lux1 bool   `json:"lux1"`
	Lux2 bool   `json:"lux2"`
}

// BackendInfrastructure is one infrastructure entry, present for every
// type, 0 when unset.
type BackendInfrastructure struct {
	Building string `json:"building"`
	Amount   int    `json:"amount"`
}

// BackendBuilding is one building entry in draft order.
type BackendBuilding struct {
	Name          string          `json:"name"`
	Amount        int             `json:"amount"`
	ActiveRecipes []BackendRecipe `json:"active_recipes"`
}

// BackendRecipe is one active recipe entry.
type BackendRecipe struct {
	RecipeID string `json:"recipeid"`
	Amount   int    `json:"amount"`
}

// ToBackendData produces the canonical serialization of the draft.
func (d *Draft) ToBackendData() BackendData {
	var empireUUID *string
	if d.EmpireUUID != "" {
		u := d.EmpireUUID
		empireUUID = &u
	}

	experts := make([]BackendExpert, 0, len(gamedata.ExpertTypes))
	for _, e := range gamedata.ExpertTypes {
		experts = append(experts, BackendExpert{Type: string(e), Amount: d.Experts[e]})
	}

	workforce := make([]BackendWorkforce, 0, len(gamedata.WorkforceTypes))
	for _, t := range gamedata.WorkforceTypes {
		lux := d.Workforce[t]
		workforce = append(workforce, BackendWorkforce{Type: string(t), Lux1: lux.Lux1, Lux2: lux.Lux2})
	}

	infrastructure := make([]BackendInfrastructure, 0, len(gamedata.InfrastructureTypes))
	for _, infra := range gamedata.InfrastructureTypes {
		infrastructure = append(infrastructure, BackendInfrastructure{
			Building: string(infra),
			Amount:   d.Infrastructure[infra],
		})
	}

	buildings := make([]BackendBuilding, 0, len(d.Buildings))
	for _, b := range d.Buildings {
		recipes := make([]BackendRecipe, 0, len(b.ActiveRecipes))
		for _, r := range b.ActiveRecipes {
			recipes = append(recipes, BackendRecipe{RecipeID: r.RecipeID, Amount: r.Amount})
		}
		buildings = append(buildings, BackendBuilding{
			Name:          b.Name,
			Amount:        b.Amount,
			ActiveRecipes: recipes,
		})
	}

	return BackendData{
		Name:           d.Name,
		PlanetID:       d.PlanetID,
		PermitsTotal:   gamedata.PermitMax,
		PermitsUsed:    1,
		OverrideEmpire: d.OverrideEmpire,
		EmpireUUID:     empireUUID,
		Faction:        d.Faction,
		Planet: BackendPlanet{
			PlanetID:  d.PlanetID,
			COGC:      string(d.COGC),
			CorpHQ:    d.CorpHQ,
			Permits:   d.Permits,
			Experts:   experts,
			Workforce: workforce,
		},
		Infrastructure: infrastructure,
		Buildings:      buildings,
	}
}

// FromBackendData reconstructs a draft from its canonical serialization.
// The uuid is the persisted identity, empty for shared or new plans.
func FromBackendData(uuid string, data BackendData) *Draft {
	d := NewDraft(data.Planet.PlanetID)
	d.UUID = uuid
	d.Name = data.Name
	d.CorpHQ = data.Planet.CorpHQ
	d.COGC = gamedata.COGCProgram(data.Planet.COGC)
	d.Permits = data.Planet.Permits
	d.OverrideEmpire = data.OverrideEmpire
	if data.EmpireUUID != nil {
		d.EmpireUUID = *data.EmpireUUID
	}
	if data.Faction != "" {
		d.Faction = data.Faction
	}

	for _, e := range data.Planet.Experts {
		d.Experts[gamedata.ExpertType(e.Type)] = e.Amount
	}
	for _, w := range data.Planet.Workforce {
		d.Workforce[gamedata.WorkforceType(w.Type)] = Luxuries{Lux1: w.Lux1, Lux2: w.Lux2}
	}
	for _, i := range data.Infrastructure {
		if i.Amount != 0 {
			d.Infrastructure[gamedata.InfrastructureType(i.Building)] = i.Amount
		}
	}

	d.Buildings = make([]Building, 0, len(data.Buildings))
	for _, b := range data.Buildings {
		recipes := make([]ActiveRecipe, 0, len(b.ActiveRecipes))
		for _, r := range b.ActiveRecipes {
			recipes = append(recipes, ActiveRecipe{RecipeID: r.RecipeID, Amount: r.Amount})
		}
		d.Buildings = append(d.Buildings, Building{
			Name:          b.Name,
			Amount:        b.Amount,
			ActiveRecipes: recipes,
		})
	}

	return d
}
