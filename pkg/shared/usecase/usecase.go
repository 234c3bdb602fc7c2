package usecase

import (
	"sync"

	compositeusecase "github.com/lukeintheclouds/researcher-composite/internal/modules/composite/usecase"
	matchmakingusecase "github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/usecase"
	researcherusecase "github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/usecase"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase/common"

	"github.com/golangid/candi/codebase/factory/dependency"
)

type (
	// Usecase unit of work for all usecase in modules
	Usecase interface {
		Researcher() researcherusecase.ResearcherUsecase
		Composite() compositeusecase.CompositeUsecase
		Matchmaking() matchmakingusecase.MatchmakingUsecase
	}

	usecaseUow struct {
		researcher  researcherusecase.ResearcherUsecase
		composite   compositeusecase.CompositeUsecase
		matchmaking matchmakingusecase.MatchmakingUsecase
	}
)

var usecaseInst *usecaseUow
var once sync.Once

// SetSharedUsecase set singleton usecase unit of work instance
func SetSharedUsecase(deps dependency.Dependency) {
	once.Do(func() {
		usecaseInst = new(usecaseUow)
		var setSharedUsecaseFuncs []func(common.Usecase)
		var setSharedUsecaseFunc func(common.Usecase)

		usecaseInst.researcher, setSharedUsecaseFunc = researcherusecase.NewResearcherUsecase(deps)
		setSharedUsecaseFuncs = append(setSharedUsecaseFuncs, setSharedUsecaseFunc)

		usecaseInst.composite, setSharedUsecaseFunc = compositeusecase.NewCompositeUsecase(deps)
		setSharedUsecaseFuncs = append(setSharedUsecaseFuncs, setSharedUsecaseFunc)

		usecaseInst.matchmaking, setSharedUsecaseFunc = matchmakingusecase.NewMatchmakingUsecase(deps)
		setSharedUsecaseFuncs = append(setSharedUsecaseFuncs, setSharedUsecaseFunc)

		sharedUsecase := common.SetCommonUsecase(usecaseInst)
		for _, setFunc := range setSharedUsecaseFuncs {
			setFunc(sharedUsecase)
		}
	})
}

// GetSharedUsecase get usecase unit of work instance
func GetSharedUsecase() Usecase {
	return usecaseInst
}

func (uc *usecaseUow) Researcher() researcherusecase.ResearcherUsecase {
	return uc.researcher
}

func (uc *usecaseUow) Composite() compositeusecase.CompositeUsecase {
	return uc.composite
}

func (uc *usecaseUow) Matchmaking() matchmakingusecase.MatchmakingUsecase {
	return uc.matchmaking
}
