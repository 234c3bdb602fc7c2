package shared

import (
	"context"
	"net/http"

	"github.com/golangid/candi/candishared"
	"github.com/google/uuid"
)

const (
	// ContextKeyCorrelationID context key for the request correlation id
	ContextKeyCorrelationID candishared.ContextKey = "correlationId"

	// HeaderCorrelationID http header carrying the correlation id
	HeaderCorrelationID = "X-Correlation-ID"
)

// SetCorrelationIDToContext put correlation id to context
func SetCorrelationIDToContext(ctx context.Context, correlationID string) context.Context {
	return candishared.SetToContext(ctx, ContextKeyCorrelationID, correlationID)
}

// GetCorrelationIDFromContext extract correlation id from context, empty string when unset
func GetCorrelationIDFromContext(ctx context.Context) string {
	correlationID, _ := candishared.GetValueFromContext(ctx, ContextKeyCorrelationID).(string)
	return correlationID
}

// HTTPCorrelationMiddleware honor incoming X-Correlation-ID header or assign a new id,
// thread it through the request context and echo it in the response header
func HTTPCorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(HeaderCorrelationID)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, correlationID)
		next.ServeHTTP(w, r.WithContext(SetCorrelationIDToContext(r.Context(), correlationID)))
	})
}
