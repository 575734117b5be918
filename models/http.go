package models

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetCodeRequest is the body of POST /generate_reset_code.
type ResetCodeRequest struct {
	Email string `json:"email"`
}

// VerifyResetCodeRequest is the body of POST /verify_reset_code.
type VerifyResetCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest is the body of POST /reset_password.
//
// ResetToken is the grant returned by POST /verify_reset_code.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
	ResetToken  string `json:"reset_token"`
}

// AddCourseRequest is the body of POST /add_course.
type AddCourseRequest struct {
	Name string `json:"name"`
}
