package response

// LoginResponse matches the OAuth2-style body the dashboard expects.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ActivationResponse struct {
	Email          string `json:"email"`
	ActivationLink string `json:"activation_link"`
	EmailSent      bool   `json:"email_sent"`
}
