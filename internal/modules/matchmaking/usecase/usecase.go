package usecase

import (
	"context"

	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/codebase/interfaces"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/domain"
	matchmakingrepo "github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/repository"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase/common"
)

// MatchmakingUsecase abstraction
type MatchmakingUsecase interface {
	RecordLike(ctx context.Context, req *domain.RequestLike) (result domain.ResponseLike, err error)
	GetLikes(ctx context.Context, researcherEmail string) (result domain.ResponseLikes, err error)
}

type matchmakingUsecaseImpl struct {
	sharedUsecase common.Usecase
	registry      matchmakingrepo.LikeRegistry
	notifier      matchmakingrepo.MatchNotifier
	publisher     map[types.Worker]interfaces.Publisher
}

// NewMatchmakingUsecase usecase impl constructor, registry backend selected from environment
func NewMatchmakingUsecase(deps dependency.Dependency) (MatchmakingUsecase, func(sharedUsecase common.Usecase)) {
	env := configs.GetEnv()

	uc := &matchmakingUsecaseImpl{
		notifier:  matchmakingrepo.NewMatchNotifierSMTP(env.SMTPHost, env.SMTPPort, env.EmailUser, env.EmailPassword),
		publisher: make(map[types.Worker]interfaces.Publisher),
	}
	if env.LikeRegistryBackend == "redis" {
		uc.registry = matchmakingrepo.NewLikeRegistryRedis(deps.GetRedisPool())
	} else {
		uc.registry = matchmakingrepo.NewLikeRegistryInMem()
	}
	if kafkaBroker := deps.GetBroker(types.Kafka); kafkaBroker != nil {
		uc.publisher[types.Kafka] = kafkaBroker.GetPublisher()
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
