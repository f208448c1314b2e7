package request

type GoogleSignInRequest struct {
	Credential string `json:"credential"`
}

// AdminLoginRequest fields are not required; blanks simply fail the
// credential check.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
