package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/matchmaking/repository"
)

func Test_matchmakingUsecaseImpl_GetLikes(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		registry := &mockrepo.LikeRegistry{}
		registry.On("Likes", mock.Anything, "bob@research.org").Return([]string{"alice@example.com"}, nil)

		uc := matchmakingUsecaseImpl{registry: registry}

		result, err := uc.GetLikes(context.Background(), "bob@research.org")
		assert.NoError(t, err)
		assert.Equal(t, "bob@research.org", result.ResearcherEmail)
		assert.Equal(t, []string{"alice@example.com"}, result.Likes)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {

		registry := &mockrepo.LikeRegistry{}
		registry.On("Likes", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

		uc := matchmakingUsecaseImpl{registry: registry}

		_, err := uc.GetLikes(context.Background(), "bob@research.org")
		assert.Error(t, err)
	})
}
