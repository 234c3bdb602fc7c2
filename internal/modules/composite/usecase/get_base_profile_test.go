package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"

	mockrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/composite/repository"
)

func Test_compositeUsecaseImpl_GetBaseProfile(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{"name": "Grace"}, nil)

		uc := compositeUsecaseImpl{remoteRepo: remoteRepo}

		data, err := uc.GetBaseProfile(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Grace", data["name"])
	})

	t.Run("Testcase #2: Negative, upstream error", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(nil, shareddomain.NewUpstreamError(404, "profile not found"))

		uc := compositeUsecaseImpl{remoteRepo: remoteRepo}

		_, err := uc.GetBaseProfile(context.Background(), 99)
		assert.Error(t, err)
		assert.Equal(t, 404, shareddomain.HTTPStatusFromError(err))
	})
}

func Test_compositeUsecaseImpl_GetBaseProfileName(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfileName", mock.Anything, mock.Anything).Return("Grace Hopper", nil)

		uc := compositeUsecaseImpl{remoteRepo: remoteRepo}

		name, err := uc.GetBaseProfileName(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Grace Hopper", name)
	})
}
