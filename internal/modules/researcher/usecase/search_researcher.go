package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
)

// SearchResearcher attribute search by organization, title and age bounds
func (uc *researcherUsecaseImpl) SearchResearcher(ctx context.Context, filter *domain.FilterResearcher) (results []domain.ResponseResearcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:SearchResearcher")
	defer trace.Finish()

	data, err := uc.repoSQL.ResearcherRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, err
	}
	if len(data) == 0 {
		return results, shareddomain.ErrResearcherNotFound
	}

	for _, detail := range data {
		var res domain.ResponseResearcher
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}
