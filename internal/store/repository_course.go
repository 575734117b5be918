package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/models"
)

// courseRepository is the PostgreSQL-backed [CourseRepository].
type courseRepository struct {
	*DB
	logger *logger.Logger
}

func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *courseRepository) CreateCourse(ctx context.Context, name string) (models.Course, error) {
	log := logger.FromContext(ctx)

	var course models.Course
	if err := r.QueryRowContext(ctx, createCourse, name).Scan(&course.ID, &course.Name); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
		return models.Course{}, r.classify(err, ErrExecutingStatement)
	}

	return course, nil
}

// ListCourses returns courses ordered by id within page.
func (r *courseRepository) ListCourses(ctx context.Context, page models.Page) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(page.Limit, page.Offset)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to execute query")
		return nil, r.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name); err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating course rows")
		return nil, r.classify(err, ErrScanningRows)
	}

	return courses, nil
}
