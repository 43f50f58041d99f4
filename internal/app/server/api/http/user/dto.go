package user

type registerInput struct {
	Body CredentialsRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type CredentialsRequest struct {
	Login    string `json:"login" doc:"Login name" minLength:"3" maxLength:"32"`
	Password string `json:"password" doc:"Password" minLength:"8"`
}

type RegisterResponse struct {
	ID     string `json:"user_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginInput struct {
	Body CredentialsRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
