package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool used by the repositories
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository   *CourseRepository
	SemesterRepository *SemesterRepository
	ReviewRepository   *ReviewRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		CourseRepository:   NewCourseRepository(db),
		SemesterRepository: NewSemesterRepository(db),
		ReviewRepository:   NewReviewRepository(db),
	}
}
