package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

const (
	defaultBaseURL     = "https://rest.fnar.net"
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// FIOClient fetches game reference data from the community FIO REST API.
// All calls are rate limited client-side and retried with exponential
// backoff on transient failures.
type FIOClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
}

// NewFIOClient creates a client with default settings: 2 req/s with burst
// of 5, 3 attempts with 1s exponential backoff.
func NewFIOClient() *FIOClient {
	return NewFIOClientWithConfig(defaultBaseURL, defaultTimeout, 2, 5, defaultMaxRetries, defaultBackoffBase)
}

// NewFIOClientWithConfig creates a client with explicit settings.
func NewFIOClientWithConfig(
	baseURL string,
	timeout time.Duration,
	requestsPerSecond int,
	burst int,
	maxRetries int,
	backoffBase time.Duration,
) *FIOClient {
	return &FIOClient{
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		baseURL:     baseURL,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
	}
}

// fioMaterial is the FIO material payload.
type fioMaterial struct {
	Ticker       string  `json:"Ticker"`
	Name         string  `json:"Name"`
	CategoryName string  `json:"CategoryName"`
	Weight       float64 `json:"Weight"`
	Volume       float64 `json:"Volume"`
}

// fioBuilding is the FIO building payload.
type fioBuilding struct {
	Ticker        string            `json:"Ticker"`
	Name          string            `json:"Name"`
	Expertise     *string           `json:"Expertise"`
	Pioneers      int               `json:"Pioneers"`
	Settlers      int               `json:"Settlers"`
	Technicians   int               `json:"Technicians"`
	Engineers     int               `json:"Engineers"`
	Scientists    int               `json:"Scientists"`
	AreaCost      int               `json:"AreaCost"`
	BuildingCosts []fioCostMaterial `json:"BuildingCosts"`
}

type fioCostMaterial struct {
	CommodityTicker string  `json:"CommodityTicker"`
	Amount          float64 `json:"Amount"`
}

// fioRecipe is the FIO recipe payload.
type fioRecipe struct {
	RecipeName     string              `json:"RecipeName"`
	BuildingTicker string              `json:"BuildingTicker"`
	TimeMs         int64               `json:"TimeMs"`
	Inputs         []fioRecipeMaterial `json:"Inputs"`
	Outputs        []fioRecipeMaterial `json:"Outputs"`
}

type fioRecipeMaterial struct {
	Ticker string  `json:"Ticker"`
	Amount float64 `json:"Amount"`
}

// fioExchange is the FIO exchange payload.
type fioExchange struct {
	MaterialTicker string  `json:"MaterialTicker"`
	ExchangeCode   string  `json:"ExchangeCode"`
	Ask            float64 `json:"Ask"`
	Bid            float64 `json:"Bid"`
	PriceAverage   float64 `json:"PriceAverage"`
}

// fioPlanet is the FIO planet payload.
type fioPlanet struct {
	PlanetNaturalID string        `json:"PlanetNaturalId"`
	PlanetName      string        `json:"PlanetName"`
	Surface         bool          `json:"Surface"`
	Gravity         float64       `json:"Gravity"`
	Pressure        float64       `json:"Pressure"`
	Temperature     float64       `json:"Temperature"`
	COGCProgram     string        `json:"COGCProgram"`
	Resources       []fioResource `json:"Resources"`
}

type fioResource struct {
	MaterialTicker string  `json:"MaterialTicker"`
	ResourceType   string  `json:"ResourceType"`
	Factor         float64 `json:"Factor"`
}

// FetchMaterials retrieves the full material catalog.
func (c *FIOClient) FetchMaterials(ctx context.Context) ([]gamedata.Material, error) {
	var payload []fioMaterial
	if err := c.get(ctx, "/material/allmaterials", &payload); err != nil {
		return nil, err
	}

	materials := make([]gamedata.Material, 0, len(payload))
	for _, m := range payload {
		materials = append(materials, gamedata.Material{
			Ticker:   m.Ticker,
			Name:     m.Name,
			Category: m.CategoryName,
			Weight:   m.Weight,
			Volume:   m.Volume,
		})
	}
	return materials, nil
}

// FetchBuildings retrieves the full building catalog.
func (c *FIOClient) FetchBuildings(ctx context.Context) ([]gamedata.Building, error) {
	var payload []fioBuilding
	if err := c.get(ctx, "/building/allbuildings", &payload); err != nil {
		return nil, err
	}

	buildings := make([]gamedata.Building, 0, len(payload))
	for _, b := range payload {
		expertise := gamedata.ExpertType("")
		if b.Expertise != nil {
			expertise = gamedata.ExpertType(*b.Expertise)
		}

		costs := make([]gamedata.MaterialAmount, 0, len(b.BuildingCosts))
		for _, cost := range b.BuildingCosts {
			costs = append(costs, gamedata.MaterialAmount{Ticker: cost.CommodityTicker, Amount: cost.Amount})
		}

		buildings = append(buildings, gamedata.Building{
			Ticker:    b.Ticker,
			Name:      b.Name,
			Expertise: expertise,
			Workforce: map[gamedata.WorkforceType]int{
				gamedata.WorkforcePioneer:    b.Pioneers,
				gamedata.WorkforceSettler:    b.Settlers,
				gamedata.WorkforceTechnician: b.Technicians,
				gamedata.WorkforceEngineer:   b.Engineers,
				gamedata.WorkforceScientist:  b.Scientists,
			},
			AreaCost: b.AreaCost,
			Costs:    costs,
		})
	}
	return buildings, nil
}

// FetchRecipes retrieves the full recipe catalog.
func (c *FIOClient) FetchRecipes(ctx context.Context) ([]gamedata.Recipe, error) {
	var payload []fioRecipe
	if err := c.get(ctx, "/recipes/allrecipes", &payload); err != nil {
		return nil, err
	}

	recipes := make([]gamedata.Recipe, 0, len(payload))
	for _, r := range payload {
		inputs := make([]gamedata.MaterialAmount, 0, len(r.Inputs))
		for _, in := range r.Inputs {
			inputs = append(inputs, gamedata.MaterialAmount{Ticker: in.Ticker, Amount: in.Amount})
		}
		outputs := make([]gamedata.MaterialAmount, 0, len(r.Outputs))
		for _, out := range r.Outputs {
			outputs = append(outputs, gamedata.MaterialAmount{Ticker: out.Ticker, Amount: out.Amount})
		}

		recipes = append(recipes, gamedata.Recipe{
			RecipeID:       fmt.Sprintf("%s#%s", r.BuildingTicker, r.RecipeName),
			BuildingTicker: r.BuildingTicker,
			TimeMs:         r.TimeMs,
			Inputs:         inputs,
			Outputs:        outputs,
		})
	}
	return recipes, nil
}

// FetchExchanges retrieves the full exchange price table.
func (c *FIOClient) FetchExchanges(ctx context.Context) ([]gamedata.Exchange, error) {
	var payload []fioExchange
	if err := c.get(ctx, "/exchange/all", &payload); err != nil {
		return nil, err
	}

	exchanges := make([]gamedata.Exchange, 0, len(payload))
	for _, e := range payload {
		exchanges = append(exchanges, gamedata.Exchange{
			TickerID:     fmt.Sprintf("%s.%s", e.MaterialTicker, e.ExchangeCode),
			Ask:          e.Ask,
			Bid:          e.Bid,
			PriceAverage: e.PriceAverage,
		})
	}
	return exchanges, nil
}

// FetchPlanet retrieves one planet by its natural id.
func (c *FIOClient) FetchPlanet(ctx context.Context, naturalID string) (*gamedata.Planet, error) {
	var payload fioPlanet
	if err := c.get(ctx, "/planet/"+naturalID, &payload); err != nil {
		return nil, err
	}

	resources := make([]gamedata.PlanetResource, 0, len(payload.Resources))
	for _, r := range payload.Resources {
		resources = append(resources, gamedata.PlanetResource{
			Ticker: r.MaterialTicker,
			Type:   gamedata.ResourceType(r.ResourceType),
			Factor: r.Factor,
		})
	}

	return &gamedata.Planet{
		NaturalID:   payload.PlanetNaturalID,
		Name:        payload.PlanetName,
		Surface:     payload.Surface,
		Gravity:     payload.Gravity,
		Pressure:    payload.Pressure,
		Temperature: payload.Temperature,
		COGCProgram: gamedata.COGCProgram(payload.COGCProgram),
		Resources:   resources,
	}, nil
}

// get performs a rate-limited GET with retries and decodes the JSON body.
func (c *FIOClient) get(ctx context.Context, path string, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoffBase * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("build request %s: %w", path, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", path, err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read %s: %w", path, err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
			continue
		default:
			return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
		}
	}

	return fmt.Errorf("GET %s: retries exhausted: %w", path, lastErr)
}
