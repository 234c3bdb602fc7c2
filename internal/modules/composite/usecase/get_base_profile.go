package usecase

import (
	"context"

	"github.com/golangid/candi/tracer"
)

func (uc *compositeUsecaseImpl) GetBaseProfile(ctx context.Context, id int64) (result map[string]interface{}, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CompositeUsecase:GetBaseProfile")
	defer func() { trace.SetError(err); trace.Finish() }()

	return uc.remoteRepo.FetchProfile(ctx, id)
}

func (uc *compositeUsecaseImpl) GetBaseProfileName(ctx context.Context, id int64) (name string, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CompositeUsecase:GetBaseProfileName")
	defer func() { trace.SetError(err); trace.Finish() }()

	return uc.remoteRepo.FetchProfileName(ctx, id)
}
