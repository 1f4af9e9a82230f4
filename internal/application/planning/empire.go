package planning

import (
	"context"
	"fmt"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
	"github.com/andrescamacho/prunplan/internal/domain/pricing"
)

// EmpireService aggregates many plans into the empire-wide material balance.
type EmpireService struct {
	data gamedata.ReferenceData
	cxs  pricing.CXProvider
}

// NewEmpireService creates an empire aggregation service over one reference
// data snapshot.
func NewEmpireService(data gamedata.ReferenceData, cxs pricing.CXProvider) *EmpireService {
	return &EmpireService{data: data, cxs: cxs}
}

// Balance computes every draft and merges the priced material flows into a
// per-ticker empire balance. Each plan is priced with its own planet
// preference under the given CX configuration. A plan that fails to compute
// fails the whole balance; a partial empire picture would be misleading.
func (s *EmpireService) Balance(
	ctx context.Context,
	drafts []*plan.Draft,
	cxID string,
) ([]materialio.EmpireEntry, error) {
	contributions := make([]materialio.PlanContribution, 0, len(drafts))

	for _, draft := range drafts {
		resolver := pricing.NewResolver(s.data, s.cxs, pricing.Selection{
			CXID:     cxID,
			PlanetID: draft.PlanetID,
		})

		result, err := Compute(ctx, draft, s.data, resolver)
		if err != nil {
			return nil, fmt.Errorf("empire balance: plan %q: %w", draft.Name, err)
		}

		contributions = append(contributions, materialio.PlanContribution{
			PlanetID:   draft.PlanetID,
			PlanUUID:   draft.UUID,
			PlanName:   draft.Name,
			MaterialIO: result.MaterialIO,
		})
	}

	return materialio.CombineEmpire(contributions), nil
}
