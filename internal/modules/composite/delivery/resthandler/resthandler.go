package resthandler

import (
	"net/http"
	"strconv"

	"github.com/golangid/candi/candihelper"
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/domain"
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
	composite := root.Group(candihelper.V1 + "/composite")

	composite.GET("/researcher/{id}", h.composeProfile)
	composite.GET("/researcher/{id}/name", h.getBaseProfileName)
	composite.GET("/base/researcher/{id}", h.getBaseProfile)
}

func (h *RestHandler) composeProfile(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "CompositeDeliveryREST:ComposeProfile")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	var filter domain.FilterComposite
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}
	mode, err := domain.ParseExecutionMode(filter.Mode)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Composite().ComposeProfile(ctx, id, domain.CompositeOptions{
		IncludePapers:         filter.IncludePapers,
		IncludeScholarMetrics: filter.IncludeScholarMetrics,
		Mode:                  mode,
	})
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) getBaseProfile(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "CompositeDeliveryREST:GetBaseProfile")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	data, err := h.uc.Composite().GetBaseProfile(ctx, id)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) getBaseProfileName(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "CompositeDeliveryREST:GetBaseProfileName")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	name, err := h.uc.Composite().GetBaseProfileName(ctx, id)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", name).JSON(rw)
}
