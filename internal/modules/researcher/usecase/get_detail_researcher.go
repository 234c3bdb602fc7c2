package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
)

func (uc *researcherUsecaseImpl) GetDetailResearcher(ctx context.Context, id int64) (result domain.ResponseResearcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:GetDetailResearcher")
	defer trace.Finish()

	repoFilter := domain.FilterResearcher{ID: &id}
	data, err := uc.repoSQL.ResearcherRepo().Find(ctx, &repoFilter)
	if err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
