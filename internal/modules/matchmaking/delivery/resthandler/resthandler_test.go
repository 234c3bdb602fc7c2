package resthandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	restserver "github.com/golangid/candi/codebase/app/rest_server"
	mockinterfaces "github.com/golangid/candi/mocks/codebase/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/domain"
	mockusecase "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/matchmaking/usecase"
	mocksharedusecase "github.com/lukeintheclouds/researcher-composite/pkg/mocks/shared/usecase"
)

var errFoo = errors.New("Something error")

func TestRestHandler_recordLike(t *testing.T) {
	validBody := `{"user_email": "alice@example.com", "researcher_email": "bob@research.org", "researcher_name": "Bob"}`

	tests := []struct {
		name, reqBody                       string
		wantValidateError, wantUsecaseError error
		wantMatched                         bool
		wantRespCode                        int
	}{
		{
			name: "Testcase #1: Positive, like recorded", reqBody: validBody, wantRespCode: 200,
		},
		{
			name: "Testcase #2: Positive, match detected", reqBody: validBody, wantMatched: true, wantRespCode: 200,
		},
		{
			name: "Testcase #3: Negative, invalid payload", reqBody: `{"user_email": }`, wantValidateError: errFoo, wantRespCode: 400,
		},
		{
			name: "Testcase #4: Negative, usecase error", reqBody: validBody, wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			matchmakingUsecase := &mockusecase.MatchmakingUsecase{}
			matchmakingUsecase.On("RecordLike", mock.Anything, mock.Anything).Return(domain.ResponseLike{Matched: tt.wantMatched}, tt.wantUsecaseError)

			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)
			mockValidator.On("ValidateStruct", mock.Anything).Return(nil)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Matchmaking").Return(matchmakingUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPost, "/v1/like", strings.NewReader(tt.reqBody))
			res := httptest.NewRecorder()
			handler.recordLike(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
			if tt.wantMatched {
				assert.Contains(t, res.Body.String(), "Match detected")
			}
		})
	}
}

func TestRestHandler_getLikes(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		original := restserver.URLParam
		restserver.URLParam = func(*http.Request, string) string { return "bob@research.org" }
		t.Cleanup(func() { restserver.URLParam = original })

		matchmakingUsecase := &mockusecase.MatchmakingUsecase{}
		matchmakingUsecase.On("GetLikes", mock.Anything, "bob@research.org").Return(domain.ResponseLikes{
			ResearcherEmail: "bob@research.org",
			Likes:           []string{"alice@example.com"},
		}, nil)

		uc := &mocksharedusecase.Usecase{}
		uc.On("Matchmaking").Return(matchmakingUsecase)

		handler := RestHandler{uc: uc}

		req := httptest.NewRequest(http.MethodGet, "/v1/like/bob@research.org", nil)
		res := httptest.NewRecorder()
		handler.getLikes(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), "alice@example.com")
	})
}
