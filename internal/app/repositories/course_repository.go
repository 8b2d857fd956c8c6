package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
	"github.com/oms-tech/reviews/internal/pkg/logger"
)

var courseColumns = []string{"id", "department", "number", "name", "created_at"}

// CourseRepository reads courses from the content store
type CourseRepository struct {
	db Querier
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) listQuery() squirrel.SelectBuilder {
	return psql.Select(courseColumns...).
		From("courses").
		OrderBy("department ASC", "number ASC")
}

func (r *CourseRepository) byCodeQuery(code models.CourseCode) squirrel.SelectBuilder {
	return psql.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"department": strings.ToUpper(code.Department)}).
		Where(squirrel.Eq{"number": code.Number}).
		Limit(1)
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	if err := row.Scan(&course.ID, &course.Department, &course.Number, &course.Name, &course.CreatedAt); err != nil {
		return nil, err
	}
	course.Code = models.CourseCode{Department: course.Department, Number: course.Number}.String()
	return course, nil
}

// List retrieves every course with bare fields
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.listQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

func (r *CourseRepository) codesQuery() squirrel.SelectBuilder {
	return psql.Select("department", "number", "name").
		From("courses").
		OrderBy("department ASC", "number ASC")
}

// ListNames retrieves the code and name of every course
func (r *CourseRepository) ListNames(ctx context.Context) ([]models.CourseName, error) {
	sql, args, err := r.codesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course names query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying course names: %w", err)
	}
	defer rows.Close()

	names := []models.CourseName{}
	for rows.Next() {
		var code models.CourseCode
		var name string
		if err := rows.Scan(&code.Department, &code.Number, &name); err != nil {
			return nil, fmt.Errorf("error scanning course name row: %w", err)
		}
		names = append(names, models.CourseName{Code: code.String(), Name: name})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course name rows: %w", err)
	}

	return names, nil
}

// ListCodes retrieves the code of every course
func (r *CourseRepository) ListCodes(ctx context.Context) ([]string, error) {
	names, err := r.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(names))
	for _, n := range names {
		codes = append(codes, n.Code)
	}
	return codes, nil
}

// GetByCode retrieves one course by its department and number
func (r *CourseRepository) GetByCode(ctx context.Context, code models.CourseCode) (*models.Course, error) {
	sql, args, err := r.byCodeQuery(code).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("course %s not found", code))
		}
		logger.Error().Err(err).Str("code", code.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course %s: %w", code, err)
	}

	return course, nil
}
