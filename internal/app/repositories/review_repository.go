package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/pkg/dberrors"
	"github.com/oms-tech/reviews/internal/pkg/logger"
)

// ReviewRepository writes reviews to and reads review projections from the content store
type ReviewRepository struct {
	db    Querier
	newID func() string
	now   func() time.Time
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db Querier) *ReviewRepository {
	return &ReviewRepository{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (r *ReviewRepository) insertQuery(review *models.Review) squirrel.InsertBuilder {
	return psql.Insert("reviews").
		Columns("id", "course_id", "semester_id", "rating", "difficulty", "workload", "body", "username", "created_at").
		Values(review.ID, review.CourseID, review.SemesterID, review.Rating, review.Difficulty, review.Workload,
			review.Body, review.Username, review.CreatedAt)
}

// Create persists review, assigning its ID and creation time
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = r.newID()
	review.CreatedAt = r.now().UTC()

	sql, args, err := r.insertQuery(review).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create review query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if constraint, ok := dberrors.ConstraintViolation(err); ok {
			logger.Warn().Err(err).Str("constraint", constraint).Str("courseID", review.CourseID).
				Str("semesterID", review.SemesterID).Msg("Review rejected by content store constraint")
			return fmt.Errorf("error creating review: %w", err)
		}
		logger.Error().Err(err).Str("courseID", review.CourseID).Msg("Error executing create review query")
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) statsQuery(courseIDs []string) squirrel.SelectBuilder {
	return psql.Select("course_id", "id", "rating", "difficulty", "workload", "created_at").
		From("reviews").
		Where(squirrel.Eq{"course_id": courseIDs}).
		OrderBy("created_at DESC")
}

func (r *ReviewRepository) fullQuery(courseIDs []string) squirrel.SelectBuilder {
	return psql.Select(
		"r.course_id", "r.id", "r.rating", "r.difficulty", "r.workload", "r.body", "r.created_at",
		"s.id", "s.term", "s.year", "s.start_date",
	).
		From("reviews r").
		Join("semesters s ON s.id = r.semester_id").
		Where(squirrel.Eq{"r.course_id": courseIDs}).
		OrderBy("r.created_at DESC")
}

// StatsByCourse returns the aggregate projection of each course's reviews, newest first
func (r *ReviewRepository) StatsByCourse(ctx context.Context, courseIDs []string) (map[string][]models.ReviewStats, error) {
	result := make(map[string][]models.ReviewStats, len(courseIDs))
	if len(courseIDs) == 0 {
		return result, nil
	}

	sql, args, err := r.statsQuery(courseIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying review stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID string
		var s models.ReviewStats
		if err := rows.Scan(&courseID, &s.ID, &s.Rating, &s.Difficulty, &s.Workload, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning review stats row: %w", err)
		}
		result[courseID] = append(result[courseID], s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review stats rows: %w", err)
	}

	return result, nil
}

// ReviewsByCourse returns each course's full reviews with their semester, newest first
func (r *ReviewRepository) ReviewsByCourse(ctx context.Context, courseIDs []string) (map[string][]models.CourseReview, error) {
	result := make(map[string][]models.CourseReview, len(courseIDs))
	if len(courseIDs) == 0 {
		return result, nil
	}

	sql, args, err := r.fullQuery(courseIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID string
		var cr models.CourseReview
		if err := rows.Scan(
			&courseID, &cr.ID, &cr.Rating, &cr.Difficulty, &cr.Workload, &cr.Body, &cr.CreatedAt,
			&cr.Semester.ID, &cr.Semester.Term, &cr.Semester.Year, &cr.Semester.StartDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		result[courseID] = append(result[courseID], cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return result, nil
}
