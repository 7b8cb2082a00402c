package response

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Elevated bool   `json:"elevated"`
}

type IDResponse struct {
	ID uint `json:"id"`
}

type BoolResponse struct {
	Allowed bool `json:"allowed"`
}
