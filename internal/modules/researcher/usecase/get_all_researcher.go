package usecase

import (
	"context"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
)

func (uc *researcherUsecaseImpl) GetAllResearcher(ctx context.Context, filter *domain.FilterResearcher) (results []domain.ResponseResearcher, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:GetAllResearcher")
	defer trace.Finish()

	data, err := uc.repoSQL.ResearcherRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count := uc.repoSQL.ResearcherRepo().Count(ctx, filter)
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseResearcher
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}
