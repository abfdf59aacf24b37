package handler

// webResponse is the success envelope wrapping every 2xx payload.
type webResponse struct {
	Data any `json:"data"`
}

// --- Request / Response types ---

type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
	Name     string `json:"name"     validate:"required,min=1,max=100"`
}

type loginUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// updateUserRequest is a partial update: nil fields are left untouched.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=100"`
}

// userResponse is the public profile. The token appears only in the login
// response; the password hash never leaves the service.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}
