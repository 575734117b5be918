package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-auth/internal/app"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid paging parameters")
		return
	}

	courses, err := h.services.CourseService.ListCourses(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, "listing courses failed")
		return
	}

	utils.WriteJSON(w, models.CoursesResponse{Courses: courses}, http.StatusOK)
}

func (h *Handler) addCourse(w http.ResponseWriter, r *http.Request) {
	var req models.AddCourseRequest
	if err := bindRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid add course request")
		return
	}

	course, err := h.services.CourseService.AddCourse(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err, "adding course failed")
		return
	}

	utils.WriteJSON(w, models.CourseCreatedResponse{Message: app.MsgCourseAdded, CourseID: course.ID}, http.StatusOK)
}

// pageFromQuery reads the optional non-negative limit and offset parameters.
func pageFromQuery(r *http.Request) (models.Page, error) {
	var page models.Page
	query := r.URL.Query()

	for name, dst := range map[string]*uint64{"limit": &page.Limit, "offset": &page.Offset} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		// Postgres LIMIT/OFFSET are bigint, so the range is that of int64
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: %s: %w", ErrInvalidRequest, name, err)
		}
		if v < 0 {
			return models.Page{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidRequest, name)
		}
		*dst = uint64(v)
	}

	return page, nil
}
