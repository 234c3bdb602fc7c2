package resthandler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/candishared"
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
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

	v1Root.GET("/researchers", h.getAllResearcher)
	v1Root.GET("/researchers/{organization}/{role}", h.searchResearcher)
	v1Root.POST("/researcher", h.createResearcher)
	v1Root.POST("/researcher/deferred", h.createResearcherDeferred)
	v1Root.GET("/researcher/{id}", h.getDetailResearcher)
	v1Root.PATCH("/researcher/{id}", h.updateResearcher)
	v1Root.PUT("/researcher/{id}", h.replaceResearcher)
	v1Root.DELETE("/researcher/{id}", h.deleteResearcher)
}

func (h *RestHandler) getAllResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:GetAllResearcher")
	defer trace.Finish()

	var filter domain.FilterResearcher
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Researcher().GetAllResearcher(ctx, &filter)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	if link := paginationLinkHeader(req, meta); link != "" {
		rw.Header().Set("Link", link)
	}
	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}

func (h *RestHandler) searchResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:SearchResearcher")
	defer trace.Finish()

	var filter domain.FilterResearcher
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}
	filter.Organization = restserver.URLParam(req, "organization")
	filter.Title = restserver.URLParam(req, "role")

	data, err := h.uc.Researcher().SearchResearcher(ctx, &filter)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) getDetailResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:GetDetailResearcher")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	data, err := h.uc.Researcher().GetDetailResearcher(ctx, id)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) createResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:CreateResearcher")
	defer trace.Finish()

	payload, err := h.parseCreatePayload(req.Body)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse payload", err).JSON(rw)
		return
	}

	data, err := h.uc.Researcher().CreateResearcher(ctx, payload)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	rw.Header().Set("Link", fmt.Sprintf("<%s/%d>; rel=\"self\"", candihelper.V1+"/researcher", data.ID))
	wrapper.NewHTTPResponse(http.StatusCreated, "Success", data).JSON(rw)
}

func (h *RestHandler) createResearcherDeferred(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:CreateResearcherDeferred")
	defer trace.Finish()

	payload, err := h.parseCreatePayload(req.Body)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse payload", err).JSON(rw)
		return
	}

	if err := h.uc.Researcher().CreateResearcherDeferred(ctx, payload); err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusAccepted, "Researcher creation scheduled").JSON(rw)
}

func (h *RestHandler) updateResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:UpdateResearcher")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	var payload domain.RequestResearcherPatch
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse payload", err).JSON(rw)
		return
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	data, err := h.uc.Researcher().UpdateResearcher(ctx, id, &payload)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) replaceResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:ReplaceResearcher")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	payload, err := h.parseCreatePayload(req.Body)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse payload", err).JSON(rw)
		return
	}

	data, err := h.uc.Researcher().ReplaceResearcher(ctx, id, payload)
	if err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) deleteResearcher(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ResearcherDeliveryREST:DeleteResearcher")
	defer trace.Finish()

	id, err := strconv.ParseInt(restserver.URLParam(req, "id"), 10, 64)
	if err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Researcher id must be numeric").JSON(rw)
		return
	}

	if err := h.uc.Researcher().DeleteResearcher(ctx, id); err != nil {
		wrapper.NewHTTPResponse(shareddomain.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

func (h *RestHandler) parseCreatePayload(body io.Reader) (*domain.RequestResearcher, error) {
	payloadBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if err := h.validator.ValidateDocument("researcher/save", payloadBytes); err != nil {
		return nil, err
	}

	var payload domain.RequestResearcher
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return nil, err
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// paginationLinkHeader build prev/next navigation from list meta
func paginationLinkHeader(req *http.Request, meta candishared.Meta) string {
	var links []string
	pageLink := func(page int, rel string) string {
		query := req.URL.Query()
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(meta.Limit))
		return fmt.Sprintf("<%s?%s>; rel=\"%s\"", req.URL.Path, query.Encode(), rel)
	}

	if meta.Page > 1 {
		links = append(links, pageLink(meta.Page-1, "prev"))
	}
	if meta.Page < meta.TotalPages {
		links = append(links, pageLink(meta.Page+1, "next"))
	}

	return strings.Join(links, ", ")
}
