package workerhandler

import (
	"encoding/json"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/logger"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/configs"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/domain"
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
	group.Add(configs.GetEnv().MatchEventTopic, h.handleMatchEvent)
}

// handleMatchEvent records match events for audit, notifications already
// went out from the producing side
func (h *KafkaHandler) handleMatchEvent(eventContext *candishared.EventContext) error {
	trace, _ := tracer.StartTraceWithContext(eventContext.Context(), "MatchmakingDeliveryKafka:MatchEvent")
	defer trace.Finish()

	var event domain.MatchEvent
	if err := json.Unmarshal(eventContext.Message(), &event); err != nil {
		logger.LogEf("matchmaking.match_event: invalid message: %v", err)
		return err
	}

	logger.LogIf("matchmaking.match_event: user=%s researcher=%s correlationId=%s occurredAt=%s",
		event.UserEmail, event.ResearcherEmail, event.CorrelationID, event.OccurredAt)
	return nil
}
