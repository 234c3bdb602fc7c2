package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golangid/candi/tracer"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/domain"
	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
)

const researcherColumns = "id, google_scholar_link, personal_website_link, organization, title, age, sex, created_at, modified_at"

type researcherRepoSQL struct {
	readDB, writeDB *sql.DB
	tx              *sql.Tx
}

// NewResearcherRepoSQL sql repo constructor
func NewResearcherRepoSQL(readDB, writeDB *sql.DB, tx *sql.Tx) ResearcherRepository {
	return &researcherRepoSQL{
		readDB, writeDB, tx,
	}
}

func (r *researcherRepoSQL) FetchAll(ctx context.Context, filter *domain.FilterResearcher) (data []shareddomain.Researcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherRepoSQL:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	if filter.OrderBy == "" {
		filter.OrderBy = "id"
	}
	if filter.Sort == "" {
		filter.Sort = "asc"
	}

	where, args := buildResearcherWhere(filter)
	query := fmt.Sprintf("SELECT %s FROM researchers %s ORDER BY %s %s",
		researcherColumns, where, filter.OrderBy, filter.Sort)
	if !filter.ShowAll {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.CalculateOffset())
	}
	trace.Log("query", query)

	rows, err := r.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return data, err
	}
	defer rows.Close()
	for rows.Next() {
		var res shareddomain.Researcher
		if err := rows.Scan(&res.ID, &res.GoogleScholarLink, &res.PersonalWebsiteLink, &res.Organization,
			&res.Title, &res.Age, &res.Sex, &res.CreatedAt, &res.ModifiedAt); err != nil {
			return nil, err
		}
		data = append(data, res)
	}
	return
}

func (r *researcherRepoSQL) Count(ctx context.Context, filter *domain.FilterResearcher) (count int) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherRepoSQL:Count")
	defer trace.Finish()

	where, args := buildResearcherWhere(filter)
	r.readDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM researchers "+where, args...).Scan(&count)
	return
}

func (r *researcherRepoSQL) Find(ctx context.Context, filter *domain.FilterResearcher) (result shareddomain.Researcher, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherRepoSQL:Find")
	defer func() { trace.SetError(err); trace.Finish() }()

	where, args := buildResearcherWhere(filter)
	if where == "" {
		return result, errors.New("find: empty filter")
	}

	err = r.readDB.QueryRowContext(ctx, fmt.Sprintf("SELECT %s FROM researchers %s LIMIT 1", researcherColumns, where), args...).
		Scan(&result.ID, &result.GoogleScholarLink, &result.PersonalWebsiteLink, &result.Organization,
			&result.Title, &result.Age, &result.Sex, &result.CreatedAt, &result.ModifiedAt)
	if err == sql.ErrNoRows {
		err = shareddomain.ErrResearcherNotFound
	}
	return
}

func (r *researcherRepoSQL) Save(ctx context.Context, data *shareddomain.Researcher) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherRepoSQL:Save")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	data.ModifiedAt = time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	db := dbExecutor(r.tx, r.writeDB)
	if data.ID == 0 {
		err = db.QueryRowContext(ctx,
			`INSERT INTO researchers (google_scholar_link, personal_website_link, organization, title, age, sex, created_at, modified_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			data.GoogleScholarLink, data.PersonalWebsiteLink, data.Organization,
			data.Title, data.Age, data.Sex, data.CreatedAt, data.ModifiedAt).Scan(&data.ID)
	} else {
		_, err = db.ExecContext(ctx,
			`UPDATE researchers SET google_scholar_link=$1, personal_website_link=$2, organization=$3, title=$4, age=$5, sex=$6, modified_at=$7 WHERE id=$8`,
			data.GoogleScholarLink, data.PersonalWebsiteLink, data.Organization,
			data.Title, data.Age, data.Sex, data.ModifiedAt, data.ID)
	}
	return
}

func (r *researcherRepoSQL) Delete(ctx context.Context, id int64) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResearcherRepoSQL:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = dbExecutor(r.tx, r.writeDB).ExecContext(ctx, "DELETE FROM researchers WHERE id=$1", id)
	return
}

type executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func dbExecutor(tx *sql.Tx, db *sql.DB) executor {
	if tx != nil {
		return tx
	}
	return db
}

func buildResearcherWhere(filter *domain.FilterResearcher) (where string, args []interface{}) {
	var conds []string
	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ID != nil {
		addCond("id = $%d", *filter.ID)
	}
	if filter.Organization != "" {
		addCond("organization = $%d", filter.Organization)
	}
	if filter.Title != "" {
		addCond("title = $%d", filter.Title)
	}
	if filter.MinAge != nil {
		addCond("age >= $%d", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		addCond("age <= $%d", *filter.MaxAge)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
