package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/oms-tech/reviews/internal/app/models"
)

// SemesterRepository reads semesters from the content store
type SemesterRepository struct {
	db Querier
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(db Querier) *SemesterRepository {
	return &SemesterRepository{db: db}
}

func (r *SemesterRepository) recentQuery(limit uint64) squirrel.SelectBuilder {
	return psql.Select("id", "term", "year", "start_date").
		From("semesters").
		OrderBy("start_date DESC").
		Limit(limit)
}

// GetRecent returns up to limit semesters, newest start date first
func (r *SemesterRepository) GetRecent(ctx context.Context, limit int) ([]models.Semester, error) {
	sql, args, err := r.recentQuery(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent semesters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying semesters: %w", err)
	}
	defer rows.Close()

	semesters := []models.Semester{}
	for rows.Next() {
		var s models.Semester
		if err := rows.Scan(&s.ID, &s.Term, &s.Year, &s.StartDate); err != nil {
			return nil, fmt.Errorf("error scanning semester row: %w", err)
		}
		semesters = append(semesters, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating semester rows: %w", err)
	}

	return semesters, nil
}
