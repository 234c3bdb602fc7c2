package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
)

func (uc *researcherUsecaseImpl) CreateResearcher(ctx context.Context, req *domain.RequestResearcher) (result domain.ResponseResearcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:CreateResearcher")
	defer trace.Finish()

	data := req.Deserialize()
	if err = uc.repoSQL.ResearcherRepo().Save(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
