package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/domain"
	mockrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/composite/repository"
	mockresearcherrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/researcher/repository"
	mocksharedrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/shared/repository"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
)

func mockRepoSQLWithResearcher(data shareddomain.Researcher, err error) *mocksharedrepo.RepoSQL {
	researcherRepo := &mockresearcherrepo.ResearcherRepository{}
	researcherRepo.On("Find", mock.Anything, mock.Anything).Return(data, err)

	repoSQL := &mocksharedrepo.RepoSQL{}
	repoSQL.On("ResearcherRepo").Return(researcherRepo)
	return repoSQL
}

func Test_compositeUsecaseImpl_ComposeProfile(t *testing.T) {
	ctx := context.Background()
	scholarLink := "https://scholar.google.com/citations?user=abc"

	t.Run("Testcase #1: Positive, all fields included", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{"name": "Ada"}, nil)

		scholarRepo := &mockrepo.ScholarRepository{}
		scholarRepo.On("FetchPapers", mock.Anything, scholarLink).Return([]domain.ResearchPaper{{PaperTitle: "Paper A"}}, nil)
		scholarRepo.On("FetchMetrics", mock.Anything, scholarLink).Return(domain.ResearchMetrics{TotalCitations: 10}, nil)

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1, GoogleScholarLink: &scholarLink}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		result, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeConcurrent,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Ada", result.Base["name"])
		assert.Len(t, result.Papers, 1)
		assert.NotNil(t, result.Metrics)
		assert.Equal(t, 10, result.Metrics.TotalCitations)
		assert.Equal(t, string(domain.ModeConcurrent), result.Execution.Mode)
	})

	t.Run("Testcase #2: Negative, absent locally issues no sub-fetch", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		scholarRepo := &mockrepo.ScholarRepository{}

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{}, shareddomain.ErrResearcherNotFound),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		_, err := uc.ComposeProfile(ctx, 99, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeConcurrent,
		})
		assert.ErrorIs(t, err, shareddomain.ErrResearcherNotFound)
		remoteRepo.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
		scholarRepo.AssertNotCalled(t, "FetchPapers", mock.Anything, mock.Anything)
		scholarRepo.AssertNotCalled(t, "FetchMetrics", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #3: Positive, flags off skip scholar fetches", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{}, nil)

		scholarRepo := &mockrepo.ScholarRepository{}

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1, GoogleScholarLink: &scholarLink}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		result, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{Mode: domain.ModeSequential})
		assert.NoError(t, err)
		assert.Nil(t, result.Papers)
		assert.Nil(t, result.Metrics)
		scholarRepo.AssertNotCalled(t, "FetchPapers", mock.Anything, mock.Anything)
		scholarRepo.AssertNotCalled(t, "FetchMetrics", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #4: Positive, no scholar link omits scholar fields", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{}, nil)

		scholarRepo := &mockrepo.ScholarRepository{}

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		result, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeConcurrent,
		})
		assert.NoError(t, err)
		assert.Nil(t, result.Papers)
		assert.Nil(t, result.Metrics)
		scholarRepo.AssertNotCalled(t, "FetchPapers", mock.Anything, mock.Anything)
		scholarRepo.AssertNotCalled(t, "FetchMetrics", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #5: Negative, base fetch failure aborts", func(t *testing.T) {

		upstreamErr := shareddomain.NewUpstreamError(503, "base profile service unreachable")
		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(nil, upstreamErr)

		scholarRepo := &mockrepo.ScholarRepository{}
		scholarRepo.On("FetchPapers", mock.Anything, mock.Anything).Return([]domain.ResearchPaper{}, nil)
		scholarRepo.On("FetchMetrics", mock.Anything, mock.Anything).Return(domain.ResearchMetrics{}, nil)

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1, GoogleScholarLink: &scholarLink}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		_, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeConcurrent,
		})
		assert.Error(t, err)
	})

	t.Run("Testcase #6: Positive, papers failure only omits papers", func(t *testing.T) {

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{"name": "Ada"}, nil)

		scholarRepo := &mockrepo.ScholarRepository{}
		scholarRepo.On("FetchPapers", mock.Anything, mock.Anything).Return(nil, errors.New("scholar timeout"))
		scholarRepo.On("FetchMetrics", mock.Anything, mock.Anything).Return(domain.ResearchMetrics{HIndex: 5}, nil)

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1, GoogleScholarLink: &scholarLink}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		result, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeSequential,
		})
		assert.NoError(t, err)
		assert.Nil(t, result.Papers)
		assert.NotNil(t, result.Metrics)
		assert.Equal(t, 5, result.Metrics.HIndex)
	})

	t.Run("Testcase #7: Positive, concurrent mode overlaps sub-fetches", func(t *testing.T) {

		stepDelay := 30 * time.Millisecond

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{}, nil).
			Run(func(mock.Arguments) { time.Sleep(stepDelay) })

		scholarRepo := &mockrepo.ScholarRepository{}
		scholarRepo.On("FetchPapers", mock.Anything, mock.Anything).Return([]domain.ResearchPaper{}, nil).
			Run(func(mock.Arguments) { time.Sleep(stepDelay) })
		scholarRepo.On("FetchMetrics", mock.Anything, mock.Anything).Return(domain.ResearchMetrics{}, nil).
			Run(func(mock.Arguments) { time.Sleep(stepDelay) })

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1, GoogleScholarLink: &scholarLink}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		result, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeConcurrent,
		})
		assert.NoError(t, err)
		elapsed := result.Execution.FinishedAt.Sub(result.Execution.StartedAt)
		assert.Less(t, elapsed, 3*stepDelay)
	})

	t.Run("Testcase #8: Positive, sequential mode sums sub-fetch latencies", func(t *testing.T) {

		stepDelay := 30 * time.Millisecond

		remoteRepo := &mockrepo.RemoteProfileRepository{}
		remoteRepo.On("FetchProfile", mock.Anything, mock.Anything).Return(map[string]interface{}{}, nil).
			Run(func(mock.Arguments) { time.Sleep(stepDelay) })

		scholarRepo := &mockrepo.ScholarRepository{}
		scholarRepo.On("FetchPapers", mock.Anything, mock.Anything).Return([]domain.ResearchPaper{}, nil).
			Run(func(mock.Arguments) { time.Sleep(stepDelay) })
		scholarRepo.On("FetchMetrics", mock.Anything, mock.Anything).Return(domain.ResearchMetrics{}, nil).
			Run(func(mock.Arguments) { time.Sleep(stepDelay) })

		uc := compositeUsecaseImpl{
			repoSQL:     mockRepoSQLWithResearcher(shareddomain.Researcher{ID: 1, GoogleScholarLink: &scholarLink}, nil),
			remoteRepo:  remoteRepo,
			scholarRepo: scholarRepo,
		}

		result, err := uc.ComposeProfile(ctx, 1, domain.CompositeOptions{
			IncludePapers: true, IncludeScholarMetrics: true, Mode: domain.ModeSequential,
		})
		assert.NoError(t, err)
		assert.Equal(t, string(domain.ModeSequential), result.Execution.Mode)
		elapsed := result.Execution.FinishedAt.Sub(result.Execution.StartedAt)
		assert.GreaterOrEqual(t, elapsed, 3*stepDelay)
	})
}
