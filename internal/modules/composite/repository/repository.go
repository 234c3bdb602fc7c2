package repository

import (
	"context"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/domain"
)

// RemoteProfileRepository abstract client of the upstream researcher profile service
type RemoteProfileRepository interface {
	// FetchProfile fetch the canonical profile payload, treated as opaque pass-through
	FetchProfile(ctx context.Context, id int64) (map[string]interface{}, error)
	// FetchProfileName fetch only the display name
	FetchProfileName(ctx context.Context, id int64) (string, error)
}

// ScholarRepository abstract provider of scholarly papers and metrics
type ScholarRepository interface {
	FetchPapers(ctx context.Context, scholarLink string) ([]domain.ResearchPaper, error)
	FetchMetrics(ctx context.Context, scholarLink string) (domain.ResearchMetrics, error)
}
