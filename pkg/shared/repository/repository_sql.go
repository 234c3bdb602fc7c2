package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/tracer"

	researcherrepo "github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/repository"
)

type (
	// RepoSQL abstraction
	RepoSQL interface {
		WithTransaction(ctx context.Context, txFunc func(ctx context.Context, repo RepoSQL) error) (err error)
		Free()

		ResearcherRepo() researcherrepo.ResearcherRepository
	}

	repoSQLImpl struct {
		readDB, writeDB *sql.DB
		tx              *sql.Tx

		// register all repository from modules
		researcherRepo researcherrepo.ResearcherRepository
	}
)

var (
	globalRepoSQL RepoSQL
	once          sync.Once
)

// SetSharedRepository set the global singleton repository implementation from dependencies
func SetSharedRepository(deps dependency.Dependency) {
	once.Do(func() {
		sqlDeps := deps.GetSQLDatabase()
		globalRepoSQL = NewRepositorySQL(sqlDeps.ReadDB(), sqlDeps.WriteDB(), nil)
	})
}

// GetSharedRepoSQL returns the global singleton "RepoSQL" implementation
func GetSharedRepoSQL() RepoSQL {
	return globalRepoSQL
}

// NewRepositorySQL constructor
func NewRepositorySQL(readDB, writeDB *sql.DB, tx *sql.Tx) RepoSQL {
	return &repoSQLImpl{
		readDB: readDB, writeDB: writeDB, tx: tx,

		researcherRepo: researcherrepo.NewResearcherRepoSQL(readDB, writeDB, tx),
	}
}

// WithTransaction run transaction for each repository with context, include handle canceled or timeout context
func (r *repoSQLImpl) WithTransaction(ctx context.Context, txFunc func(ctx context.Context, repo RepoSQL) error) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RepoSQL:Transaction")
	defer trace.Finish()

	tx, err := r.writeDB.Begin()
	if err != nil {
		return err
	}

	// reinit new repository in different memory address with tx value
	manager := NewRepositorySQL(r.readDB, r.writeDB, tx)
	defer func() {
		if err != nil {
			tx.Rollback()
			trace.SetError(err)
		} else {
			tx.Commit()
		}
		manager.Free()
	}()

	errChan := make(chan error)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errChan <- fmt.Errorf("panic: %v", r)
			}
			close(errChan)
		}()

		if err := txFunc(ctx, manager); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("Canceled or timeout: %v", ctx.Err())
	case e := <-errChan:
		return e
	}
}

func (r *repoSQLImpl) Free() {
	r.researcherRepo = nil
}

func (r *repoSQLImpl) ResearcherRepo() researcherrepo.ResearcherRepository {
	return r.researcherRepo
}
