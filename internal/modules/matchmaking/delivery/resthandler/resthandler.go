package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/golangid/candi/candihelper"
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/matchmaking/domain"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.Usecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.Usecase, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root interfaces.RESTRouter) {
	v1Root := root.Group(candihelper.V1)

	v1Root.POST("/like", h.recordLike)
	v1Root.GET("/like/{researcherEmail}", h.getLikes)
}

func (h *RestHandler) recordLike(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MatchmakingDeliveryREST:RecordLike")
	defer trace.Finish()

	payloadBytes, err := io.ReadAll(req.Body)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed read payload", err).JSON(rw)
		return
	}
	if err := h.validator.ValidateDocument("matchmaking/like", payloadBytes); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestLike
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse payload", err).JSON(rw)
		return
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	data, err := h.uc.Matchmaking().RecordLike(ctx, &payload)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	message := "Like recorded successfully"
	if data.Matched {
		message = "Match detected"
	}
	wrapper.NewHTTPResponse(http.StatusOK, message, data).JSON(rw)
}

func (h *RestHandler) getLikes(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MatchmakingDeliveryREST:GetLikes")
	defer trace.Finish()

	data, err := h.uc.Matchmaking().GetLikes(ctx, restserver.URLParam(req, "researcherEmail"))
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}
