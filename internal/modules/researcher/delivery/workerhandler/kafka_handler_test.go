package workerhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/golangid/candi/candishared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	mockusecase "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/researcher/usecase"
	mocksharedusecase "github.com/lukeintheclouds/researcher-composite/pkg/mocks/shared/usecase"
)

func TestKafkaHandler_handleDeferredResearcher(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		message, _ := json.Marshal(domain.DeferredResearcherMessage{
			CorrelationID: "corr-1",
			Payload:       domain.RequestResearcher{Title: "Chemist", Age: 38, Sex: "female"},
		})

		researcherUsecase := &mockusecase.ResearcherUsecase{}
		researcherUsecase.On("ProcessDeferredResearcher", mock.Anything, message).Return(nil)

		uc := &mocksharedusecase.Usecase{}
		uc.On("Researcher").Return(researcherUsecase)

		handler := NewKafkaHandler(uc)

		eventContext := candishared.NewEventContext(bytes.NewBuffer(nil))
		eventContext.SetContext(context.Background())
		eventContext.Write(message)

		err := handler.handleDeferredResearcher(eventContext)
		assert.NoError(t, err)
	})
}
