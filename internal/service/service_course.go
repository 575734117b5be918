package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/models"
)

type courseService struct {
	courseRepository store.CourseRepository

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (c *courseService) AddCourse(ctx context.Context, name string) (models.Course, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return models.Course{}, ErrInvalidDataProvided
	}

	course, err := c.courseRepository.CreateCourse(ctx, name)
	if err != nil {
		log.Err(err).Str("func", "*courseService.AddCourse").Msg("error adding course")
		return models.Course{}, fmt.Errorf("error adding course: %w", err)
	}

	return course, nil
}

// ListCourses returns the catalog ordered by id. A zero page returns everything.
func (c *courseService) ListCourses(ctx context.Context, page models.Page) ([]models.Course, error) {
	courses, err := c.courseRepository.ListCourses(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseService.ListCourses").Msg("error listing courses")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	if courses == nil {
		courses = []models.Course{}
	}

	return courses, nil
}
