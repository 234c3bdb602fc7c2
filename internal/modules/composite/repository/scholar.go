package repository

import (
	"context"
	"time"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/domain"
)

type scholarRepoStub struct {
	delay time.Duration
}

// NewScholarRepoStub stub provider, sleeps the configured delay then returns fixed payloads
func NewScholarRepoStub(delay time.Duration) ScholarRepository {
	return &scholarRepoStub{delay: delay}
}

func (s *scholarRepoStub) FetchPapers(ctx context.Context, scholarLink string) (papers []domain.ResearchPaper, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ScholarRepo:FetchPapers")
	defer func() { trace.SetError(err); trace.Finish() }()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return []domain.ResearchPaper{
		{
			PaperTitle:     "Composable Aggregation of Distributed Research Profiles",
			PaperLink:      scholarLink + "/papers/1",
			ProjectWebsite: scholarLink,
		},
		{
			PaperTitle: "Latency Characteristics of Fan-Out Service Composition",
			PaperLink:  scholarLink + "/papers/2",
		},
	}, nil
}

func (s *scholarRepoStub) FetchMetrics(ctx context.Context, scholarLink string) (metrics domain.ResearchMetrics, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ScholarRepo:FetchMetrics")
	defer func() { trace.SetError(err); trace.Finish() }()

	if err := s.wait(ctx); err != nil {
		return metrics, err
	}

	return domain.ResearchMetrics{
		TotalCitations: 1250,
		HIndex:         18,
		I10Index:       27,
	}, nil
}

func (s *scholarRepoStub) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
