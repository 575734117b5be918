package models

// UserIDResponse is returned by signup and login.
type UserIDResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// VerifyResetCodeResponse carries the grant required by POST /reset_password.
type VerifyResetCodeResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token,omitempty"`
}

// CourseCreatedResponse is returned by POST /add_course.
type CourseCreatedResponse struct {
	Message  string `json:"message"`
	CourseID int64  `json:"course_id"`
}

// CoursesResponse is returned by GET /courses.
type CoursesResponse struct {
	Courses []Course `json:"courses"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
