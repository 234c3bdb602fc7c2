package usecase

import (
	"context"
	"errors"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared"
)

// CreateResearcherDeferred queue the creation, the kafka worker persists it after the configured delay
func (uc *researcherUsecaseImpl) CreateResearcherDeferred(ctx context.Context, req *domain.RequestResearcher) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:CreateResearcherDeferred")
	defer func() { trace.SetError(err); trace.Finish() }()

	publisher := uc.publisher[types.Kafka]
	if publisher == nil {
		return errors.New("kafka publisher is not configured")
	}

	message := domain.DeferredResearcherMessage{
		CorrelationID: shared.GetCorrelationIDFromContext(ctx),
		Payload:       *req,
	}

	return publisher.PublishMessage(ctx, &candishared.PublisherArgument{
		Topic:   configs.GetEnv().DeferredResearcherTopic,
		Key:     message.CorrelationID,
		Message: candihelper.ToBytes(message),
	})
}
