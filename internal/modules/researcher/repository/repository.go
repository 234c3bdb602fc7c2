package repository

import (
	"context"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
)

// ResearcherRepository abstract interface
type ResearcherRepository interface {
	FetchAll(ctx context.Context, filter *domain.FilterResearcher) ([]shareddomain.Researcher, error)
	Count(ctx context.Context, filter *domain.FilterResearcher) int
	Find(ctx context.Context, filter *domain.FilterResearcher) (shareddomain.Researcher, error)
	Save(ctx context.Context, data *shareddomain.Researcher) error
	Delete(ctx context.Context, id int64) (err error)
}
