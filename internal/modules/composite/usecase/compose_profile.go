package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/golangid/candi/logger"
	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/domain"
	researcherdomain "github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared"
)

// ComposeProfile merge the local record with the upstream base profile and optional scholarly sub-fetches.
// The base fetch is mandatory and its failure aborts the request, papers and metrics are independent
// sub-fetches whose failures only omit the corresponding field.
func (uc *compositeUsecaseImpl) ComposeProfile(ctx context.Context, id int64, opts domain.CompositeOptions) (result domain.ResponseComposite, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CompositeUsecase:ComposeProfile")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("mode", string(opts.Mode))

	repoFilter := researcherdomain.FilterResearcher{ID: &id}
	stored, err := uc.repoSQL.ResearcherRepo().Find(ctx, &repoFilter)
	if err != nil {
		// absent locally, no sub-fetch is issued
		return result, err
	}

	withScholar := stored.HasScholarLink()
	fetchPapers := opts.IncludePapers && withScholar
	fetchMetrics := opts.IncludeScholarMetrics && withScholar

	var (
		base       map[string]interface{}
		papers     []domain.ResearchPaper
		metrics    domain.ResearchMetrics
		baseErr    error
		papersErr  error
		metricsErr error
	)

	startedAt := time.Now()
	if opts.Mode == domain.ModeSequential {
		base, baseErr = uc.remoteRepo.FetchProfile(ctx, id)
		if fetchPapers {
			papers, papersErr = uc.scholarRepo.FetchPapers(ctx, *stored.GoogleScholarLink)
		}
		if fetchMetrics {
			metrics, metricsErr = uc.scholarRepo.FetchMetrics(ctx, *stored.GoogleScholarLink)
		}
	} else {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			base, baseErr = uc.remoteRepo.FetchProfile(ctx, id)
		}()
		if fetchPapers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				papers, papersErr = uc.scholarRepo.FetchPapers(ctx, *stored.GoogleScholarLink)
			}()
		}
		if fetchMetrics {
			wg.Add(1)
			go func() {
				defer wg.Done()
				metrics, metricsErr = uc.scholarRepo.FetchMetrics(ctx, *stored.GoogleScholarLink)
			}()
		}
		wg.Wait()
	}
	finishedAt := time.Now()

	if baseErr != nil {
		return result, baseErr
	}

	correlationID := shared.GetCorrelationIDFromContext(ctx)
	if papersErr != nil {
		// recovered, the papers field is omitted
		logger.LogEf("correlationId=%s papers sub-fetch failed: %v", correlationID, papersErr)
		papers = nil
	}
	if metricsErr != nil {
		logger.LogEf("correlationId=%s metrics sub-fetch failed: %v", correlationID, metricsErr)
	}

	result.DB.Serialize(&stored)
	result.Base = base
	result.Papers = papers
	if fetchMetrics && metricsErr == nil {
		result.Metrics = &metrics
	}
	result.Execution = domain.ExecutionInfo{
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Elapsed:    finishedAt.Sub(startedAt).String(),
		Mode:       string(opts.Mode),
	}
	return result, nil
}
