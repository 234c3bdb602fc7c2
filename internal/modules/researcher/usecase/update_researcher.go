package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/repository"
)

// UpdateResearcher partial update, only supplied fields overwrite the stored record
func (uc *researcherUsecaseImpl) UpdateResearcher(ctx context.Context, id int64, req *domain.RequestResearcherPatch) (result domain.ResponseResearcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:UpdateResearcher")
	defer trace.Finish()

	repoFilter := domain.FilterResearcher{ID: &id}
	existing, err := uc.repoSQL.ResearcherRepo().Find(ctx, &repoFilter)
	if err != nil {
		return result, err
	}

	req.Apply(&existing)
	err = uc.repoSQL.WithTransaction(ctx, func(ctx context.Context, repo repository.RepoSQL) error {
		return repo.ResearcherRepo().Save(ctx, &existing)
	})
	if err != nil {
		return result, err
	}

	result.Serialize(&existing)
	return
}
