package workerhandler

import (
	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase"
)

// KafkaHandler struct
type KafkaHandler struct {
	uc usecase.Usecase
}

// NewKafkaHandler constructor
func NewKafkaHandler(uc usecase.Usecase) *KafkaHandler {
	return &KafkaHandler{
		uc: uc,
	}
}

// MountHandlers mount handler group
func (h *KafkaHandler) MountHandlers(group *types.WorkerHandlerGroup) {
	group.Add(configs.GetEnv().DeferredResearcherTopic, h.handleDeferredResearcher)
}

func (h *KafkaHandler) handleDeferredResearcher(eventContext *candishared.EventContext) error {
	trace, ctx := tracer.StartTraceWithContext(eventContext.Context(), "ResearcherDeliveryKafka:DeferredResearcher")
	defer trace.Finish()

	return h.uc.Researcher().ProcessDeferredResearcher(ctx, eventContext.Message())
}
