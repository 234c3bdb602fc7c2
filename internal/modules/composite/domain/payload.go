package domain

import (
	"errors"
	"time"

	researcherdomain "github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
)

// ExecutionMode orchestration mode for composite sub-fetches
type ExecutionMode string

const (
	// ModeConcurrent issue all sub-fetches simultaneously, latency is the max of sub-fetch latencies
	ModeConcurrent ExecutionMode = "concurrent"
	// ModeSequential issue sub-fetches one after another, latency is the sum, kept for comparison
	ModeSequential ExecutionMode = "sequential"
)

// ErrInvalidExecutionMode mode query param outside the enumerated domain
var ErrInvalidExecutionMode = errors.New("mode must be 'concurrent' or 'sequential'")

// ParseExecutionMode parse mode string, empty defaults to concurrent
func ParseExecutionMode(mode string) (ExecutionMode, error) {
	switch mode {
	case "", string(ModeConcurrent):
		return ModeConcurrent, nil
	case string(ModeSequential):
		return ModeSequential, nil
	}
	return "", ErrInvalidExecutionMode
}

// FilterComposite query filter for the compose endpoint
type FilterComposite struct {
	IncludePapers         bool   `json:"include_papers"`
	IncludeScholarMetrics bool   `json:"include_scholar_metrics"`
	Mode                  string `json:"mode"`
}

// CompositeOptions resolved compose options
type CompositeOptions struct {
	IncludePapers         bool
	IncludeScholarMetrics bool
	Mode                  ExecutionMode
}

// ResearchPaper single scholarly paper entry
type ResearchPaper struct {
	PaperTitle     string `json:"paper_title"`
	PaperLink      string `json:"paper_link,omitempty"`
	DemoVideoLink  string `json:"demo_video_link,omitempty"`
	ProjectWebsite string `json:"project_website,omitempty"`
}

// ResearchMetrics scholarly metrics bundle
type ResearchMetrics struct {
	TotalCitations int `json:"total_citations"`
	HIndex         int `json:"h_index"`
	I10Index       int `json:"i10_index"`
}

// ExecutionInfo timing metadata of one compose invocation
type ExecutionInfo struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Elapsed    string    `json:"elapsed"`
	Mode       string    `json:"mode"`
}

// ResponseComposite merged view, constructed fresh per request and never cached
type ResponseComposite struct {
	DB        researcherdomain.ResponseResearcher `json:"db"`
	Base      map[string]interface{}              `json:"base"`
	Papers    []ResearchPaper                     `json:"papers,omitempty"`
	Metrics   *ResearchMetrics                    `json:"metrics,omitempty"`
	Execution ExecutionInfo                       `json:"execution"`
}
