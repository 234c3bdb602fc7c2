package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golangid/candi/logger"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared"
)

// ProcessDeferredResearcher consume a queued creation, wait the configured delay then persist
func (uc *researcherUsecaseImpl) ProcessDeferredResearcher(ctx context.Context, message []byte) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherUsecase:ProcessDeferredResearcher")
	defer func() { trace.SetError(err); trace.Finish() }()

	var msg domain.DeferredResearcherMessage
	if err = json.Unmarshal(message, &msg); err != nil {
		return err
	}
	ctx = shared.SetCorrelationIDToContext(ctx, msg.CorrelationID)

	if delay := configs.GetEnv().DeferredResearcherDelay; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	res, err := uc.CreateResearcher(ctx, &msg.Payload)
	if err != nil {
		return err
	}

	logger.LogIf("correlationId=%s deferred researcher created with id %d", msg.CorrelationID, res.ID)
	return nil
}
