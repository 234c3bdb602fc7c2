package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/codebase/interfaces"
	mockinterfaces "github.com/golangid/candi/mocks/codebase/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
)

func Test_researcherUsecaseImpl_CreateResearcherDeferred(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		publisher := &mockinterfaces.Publisher{}
		publisher.On("PublishMessage", mock.Anything, mock.Anything).Return(nil)

		uc := researcherUsecaseImpl{
			publisher: map[types.Worker]interfaces.Publisher{types.Kafka: publisher},
		}

		err := uc.CreateResearcherDeferred(context.Background(), &domain.RequestResearcher{
			Title: "Robotics Researcher", Age: 31, Sex: "female",
		})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, publish failed", func(t *testing.T) {

		publisher := &mockinterfaces.Publisher{}
		publisher.On("PublishMessage", mock.Anything, mock.Anything).Return(errors.New("Error"))

		uc := researcherUsecaseImpl{
			publisher: map[types.Worker]interfaces.Publisher{types.Kafka: publisher},
		}

		err := uc.CreateResearcherDeferred(context.Background(), &domain.RequestResearcher{})
		assert.Error(t, err)
	})

	t.Run("Testcase #3: Negative, no kafka publisher registered", func(t *testing.T) {

		uc := researcherUsecaseImpl{
			publisher: map[types.Worker]interfaces.Publisher{},
		}

		err := uc.CreateResearcherDeferred(context.Background(), &domain.RequestResearcher{
			Title: "Robotics Researcher", Age: 31, Sex: "female",
		})
		assert.Error(t, err)
	})
}
