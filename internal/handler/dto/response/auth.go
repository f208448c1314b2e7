package response

import (
	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/usecase"
)

type UserResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// SessionResponse is also the answer to a declined sign-in, with SignedIn
// false and nothing else set.
type SessionResponse struct {
	SignedIn  bool          `json:"signedIn"`
	User      *UserResponse `json:"user,omitempty"`
	Token     string        `json:"token,omitempty"`
	ExpiresIn int           `json:"expiresIn,omitempty"`
}

func FromIdentity(id user.Identity) *UserResponse {
	return &UserResponse{
		Name:    id.Name(),
		Email:   id.Email().Value(),
		Picture: id.Picture(),
	}
}

func FromSession(s *usecase.Session) SessionResponse {
	return SessionResponse{
		SignedIn:  true,
		User:      FromIdentity(s.Identity),
		Token:     s.Token,
		ExpiresIn: int(s.ExpiresIn.Seconds()),
	}
}

type AdminSessionResponse struct {
	IsAdminAuthenticated bool `json:"isAdminAuthenticated"`
}
