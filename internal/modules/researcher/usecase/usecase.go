package usecase

import (
	"context"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/codebase/interfaces"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/repository"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase/common"
)

// ResearcherUsecase abstraction
type ResearcherUsecase interface {
	GetAllResearcher(ctx context.Context, filter *domain.FilterResearcher) (data []domain.ResponseResearcher, meta candishared.Meta, err error)
	GetDetailResearcher(ctx context.Context, id int64) (data domain.ResponseResearcher, err error)
	CreateResearcher(ctx context.Context, data *domain.RequestResearcher) (res domain.ResponseResearcher, err error)
	CreateResearcherDeferred(ctx context.Context, data *domain.RequestResearcher) (err error)
	ProcessDeferredResearcher(ctx context.Context, message []byte) (err error)
	UpdateResearcher(ctx context.Context, id int64, data *domain.RequestResearcherPatch) (res domain.ResponseResearcher, err error)
	ReplaceResearcher(ctx context.Context, id int64, data *domain.RequestResearcher) (res domain.ResponseResearcher, err error)
	DeleteResearcher(ctx context.Context, id int64) (err error)
	SearchResearcher(ctx context.Context, filter *domain.FilterResearcher) (data []domain.ResponseResearcher, err error)
}

type researcherUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoSQL       repository.RepoSQL
	publisher     map[types.Worker]interfaces.Publisher
}

// NewResearcherUsecase usecase impl constructor
func NewResearcherUsecase(deps dependency.Dependency) (ResearcherUsecase, func(sharedUsecase common.Usecase)) {
	uc := &researcherUsecaseImpl{
		repoSQL:   repository.GetSharedRepoSQL(),
		publisher: make(map[types.Worker]interfaces.Publisher),
	}
	if kafkaBroker := deps.GetBroker(types.Kafka); kafkaBroker != nil {
		uc.publisher[types.Kafka] = kafkaBroker.GetPublisher()
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
