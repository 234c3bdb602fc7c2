package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/domain"
)

func (uc *matchmakingUsecaseImpl) GetLikes(ctx context.Context, researcherEmail string) (result domain.ResponseLikes, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MatchmakingUsecase:GetLikes")
	defer trace.Finish()

	likes, err := uc.registry.Likes(ctx, researcherEmail)
	if err != nil {
		return result, err
	}

	result.ResearcherEmail = researcherEmail
	result.Likes = likes
	return
}
