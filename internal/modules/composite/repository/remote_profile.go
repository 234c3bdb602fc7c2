package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/pkg/shared"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
)

type remoteProfileRepoHTTP struct {
	host   string
	client *httpclient.Client
}

// NewRemoteProfileRepoHTTP upstream profile client constructor, every call carries the given timeout budget
func NewRemoteProfileRepoHTTP(host string, timeout time.Duration) RemoteProfileRepository {
	backoff := heimdall.NewConstantBackoff(500*time.Millisecond, 5*time.Millisecond)
	retrier := heimdall.NewRetrier(backoff)

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(1),
	)

	return &remoteProfileRepoHTTP{
		host:   strings.TrimSuffix(host, "/"),
		client: client,
	}
}

func (r *remoteProfileRepoHTTP) FetchProfile(ctx context.Context, id int64) (result map[string]interface{}, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RemoteProfileRepo:FetchProfile")
	defer func() { trace.SetError(err); trace.Finish() }()

	respBody, err := r.call(ctx, trace.Tags(), fmt.Sprintf("%s/researcher/%d", r.host, id))
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, shareddomain.NewUpstreamError(http.StatusBadGateway, "malformed upstream payload: "+err.Error())
	}
	return result, nil
}

func (r *remoteProfileRepoHTTP) FetchProfileName(ctx context.Context, id int64) (name string, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RemoteProfileRepo:FetchProfileName")
	defer func() { trace.SetError(err); trace.Finish() }()

	respBody, err := r.call(ctx, trace.Tags(), fmt.Sprintf("%s/researcher/%d/name", r.host, id))
	if err != nil {
		return "", err
	}

	if err := json.Unmarshal(respBody, &name); err != nil {
		return "", shareddomain.NewUpstreamError(http.StatusBadGateway, "malformed upstream payload: "+err.Error())
	}
	return name, nil
}

// call do the http request, distinguishing transport failure from non-2xx upstream status
func (r *remoteProfileRepoHTTP) call(ctx context.Context, tags map[string]interface{}, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if correlationID := shared.GetCorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(shared.HeaderCorrelationID, correlationID)
	}

	tags["http.method"] = req.Method
	tags["http.url"] = url

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, shareddomain.NewUpstreamError(http.StatusServiceUnavailable, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, shareddomain.NewUpstreamError(http.StatusServiceUnavailable, err.Error())
	}

	tags["response.code"] = resp.StatusCode
	tags["response.body"] = string(respBody)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, shareddomain.NewUpstreamError(resp.StatusCode, resp.Status)
	}
	return respBody, nil
}
