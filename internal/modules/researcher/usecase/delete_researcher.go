package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"
)

func (uc *researcherUsecaseImpl) DeleteResearcher(ctx context.Context, id int64) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:DeleteResearcher")
	defer trace.Finish()

	return uc.repoSQL.ResearcherRepo().Delete(ctx, id)
}
