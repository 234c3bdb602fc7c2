package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	mockrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/modules/researcher/repository"
	mocksharedrepo "github.com/lukeintheclouds/researcher-composite/pkg/mocks/shared/repository"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
	sharedrepository "github.com/lukeintheclouds/researcher-composite/pkg/shared/repository"
)

func Test_researcherUsecaseImpl_ReplaceResearcher(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, absent optional fields cleared", func(t *testing.T) {

		org := "Stanford"
		stored := shareddomain.Researcher{ID: 1, Title: "Lecturer", Age: 40, Sex: "male", Organization: &org}

		researcherRepo := &mockrepo.ResearcherRepository{}
		researcherRepo.On("Find", mock.Anything, mock.Anything).Return(stored, nil)
		researcherRepo.On("Save", mock.Anything, mock.MatchedBy(func(data *shareddomain.Researcher) bool {
			return data.ID == 1 && data.Title == "Senior Lecturer" && data.Organization == nil
		})).Return(nil)

		repoSQL := &mocksharedrepo.RepoSQL{}
		repoSQL.On("ResearcherRepo").Return(researcherRepo)
		repoSQL.On("WithTransaction", mock.Anything,
			mock.AnythingOfType("func(context.Context, repository.RepoSQL) error")).
			Return(nil).
			Run(func(args mock.Arguments) {
				arg := args.Get(1).(func(context.Context, sharedrepository.RepoSQL) error)
				arg(ctx, repoSQL)
			})

		uc := researcherUsecaseImpl{
			repoSQL: repoSQL,
		}

		res, err := uc.ReplaceResearcher(ctx, 1, &domain.RequestResearcher{
			Title: "Senior Lecturer", Age: 41, Sex: "male",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.ID)
		assert.Nil(t, res.Organization)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		researcherRepo := &mockrepo.ResearcherRepository{}
		researcherRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Researcher{}, shareddomain.ErrResearcherNotFound)

		repoSQL := &mocksharedrepo.RepoSQL{}
		repoSQL.On("ResearcherRepo").Return(researcherRepo)

		uc := researcherUsecaseImpl{
			repoSQL: repoSQL,
		}

		_, err := uc.ReplaceResearcher(ctx, 99, &domain.RequestResearcher{})
		assert.Error(t, err)
	})
}
