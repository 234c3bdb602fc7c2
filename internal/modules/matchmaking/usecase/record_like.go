package usecase

import (
	"context"
	"time"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/logger"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared"
)

// RecordLike record a directional like, a like already present for the same pair is the match signal.
// Both parties are notified independently on a match, a failed delivery never rolls back registry state.
func (uc *matchmakingUsecaseImpl) RecordLike(ctx context.Context, req *domain.RequestLike) (result domain.ResponseLike, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MatchmakingUsecase:RecordLike")
	defer func() { trace.SetError(err); trace.Finish() }()

	correlationID := shared.GetCorrelationIDFromContext(ctx)

	alreadyLiked, err := uc.registry.CheckAndAdd(ctx, req.ResearcherEmail, req.UserEmail)
	if err != nil {
		return result, err
	}
	if !alreadyLiked {
		logger.LogIf("correlationId=%s like recorded for researcher %s", correlationID, req.ResearcherEmail)
		return result, nil
	}

	result.Matched = true
	logger.LogIf("correlationId=%s match detected between %s and %s", correlationID, req.UserEmail, req.ResearcherEmail)

	// each delivery is independent, either may fail without affecting the other
	result.Deliveries = append(result.Deliveries,
		uc.deliver(ctx, req.UserEmail, "Researcher "+req.ResearcherName),
		uc.deliver(ctx, req.ResearcherEmail, "User "+req.UserEmail),
	)
	for _, delivery := range result.Deliveries {
		if !delivery.Delivered {
			result.PartialDelivery = true
		}
	}

	uc.publishMatchEvent(ctx, domain.MatchEvent{
		UserEmail:       req.UserEmail,
		ResearcherEmail: req.ResearcherEmail,
		ResearcherName:  req.ResearcherName,
		CorrelationID:   correlationID,
		OccurredAt:      time.Now(),
	})

	return result, nil
}

func (uc *matchmakingUsecaseImpl) deliver(ctx context.Context, recipient, counterpart string) domain.DeliveryResult {
	result := domain.DeliveryResult{Recipient: recipient, Delivered: true}
	if err := uc.notifier.Notify(ctx, recipient, counterpart); err != nil {
		logger.LogEf("correlationId=%s failed to notify %s: %v", shared.GetCorrelationIDFromContext(ctx), recipient, err)
		result.Delivered = false
		result.Error = err.Error()
	}
	return result
}

// publishMatchEvent best-effort side-channel, a broker failure never fails the like action
func (uc *matchmakingUsecaseImpl) publishMatchEvent(ctx context.Context, event domain.MatchEvent) {
	publisher := uc.publisher[types.Kafka]
	if publisher == nil {
		return
	}

	if err := publisher.PublishMessage(ctx, &candishared.PublisherArgument{
		Topic:   configs.GetEnv().MatchEventTopic,
		Key:     event.ResearcherEmail,
		Message: candihelper.ToBytes(event),
	}); err != nil {
		logger.LogEf("correlationId=%s failed to publish match event: %v", event.CorrelationID, err)
	}
}
