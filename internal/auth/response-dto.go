package auth

// SetupResponse reports the bootstrap outcome. The password is never echoed.
type SetupResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Created  bool   `json:"created"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Username    string `json:"username"`
}
