package usecase

import (
	"context"

	"github.com/golangid/candi/codebase/factory/dependency"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/domain"
	compositerepo "github.com/lukeintheclouds/researcher-composite/internal/modules/composite/repository"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/repository"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase/common"
)

// CompositeUsecase abstraction
type CompositeUsecase interface {
	ComposeProfile(ctx context.Context, id int64, opts domain.CompositeOptions) (result domain.ResponseComposite, err error)
	GetBaseProfile(ctx context.Context, id int64) (result map[string]interface{}, err error)
	GetBaseProfileName(ctx context.Context, id int64) (name string, err error)
}

type compositeUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoSQL       repository.RepoSQL
	remoteRepo    compositerepo.RemoteProfileRepository
	scholarRepo   compositerepo.ScholarRepository
}

// NewCompositeUsecase usecase impl constructor
func NewCompositeUsecase(deps dependency.Dependency) (CompositeUsecase, func(sharedUsecase common.Usecase)) {
	uc := &compositeUsecaseImpl{
		repoSQL:     repository.GetSharedRepoSQL(),
		remoteRepo:  compositerepo.NewRemoteProfileRepoHTTP(configs.GetEnv().RemoteProfileHost, configs.GetEnv().RemoteProfileTimeout),
		scholarRepo: compositerepo.NewScholarRepoStub(configs.GetEnv().ScholarFetchDelay),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
