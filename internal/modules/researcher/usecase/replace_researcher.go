package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/repository"
)

// ReplaceResearcher full update, absent optional fields are cleared
func (uc *researcherUsecaseImpl) ReplaceResearcher(ctx context.Context, id int64, req *domain.RequestResearcher) (result domain.ResponseResearcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:ReplaceResearcher")
	defer trace.Finish()

	repoFilter := domain.FilterResearcher{ID: &id}
	existing, err := uc.repoSQL.ResearcherRepo().Find(ctx, &repoFilter)
	if err != nil {
		return result, err
	}

	req.ID = existing.ID
	data := req.Deserialize()
	data.CreatedAt = existing.CreatedAt
	err = uc.repoSQL.WithTransaction(ctx, func(ctx context.Context, repo repository.RepoSQL) error {
		return repo.ResearcherRepo().Save(ctx, &data)
	})
	if err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
