package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	mockrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/researcher/repository"
	mocksharedrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/shared/repository"
)

func Test_researcherUsecaseImpl_ProcessDeferredResearcher(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		researcherRepo := &mockrepo.ResearcherRepository{}
		researcherRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		repoSQL := &mocksharedrepo.RepoSQL{}
		repoSQL.On("ResearcherRepo").Return(researcherRepo)

		uc := researcherUsecaseImpl{
			repoSQL: repoSQL,
		}

		message, _ := json.Marshal(domain.DeferredResearcherMessage{
			CorrelationID: "b2b8f9a0-0000-0000-0000-000000000000",
			Payload:       domain.RequestResearcher{Title: "Biologist", Age: 45, Sex: "male"},
		})
		err := uc.ProcessDeferredResearcher(context.Background(), message)
		assert.NoError(t, err)
		researcherRepo.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("Testcase #2: Negative, invalid message", func(t *testing.T) {

		uc := researcherUsecaseImpl{}

		err := uc.ProcessDeferredResearcher(context.Background(), []byte("not a json"))
		assert.Error(t, err)
	})
}
