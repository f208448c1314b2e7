package user

import "strings"

// Identity is what the identity provider tells us about the signed-in
// person. It is never persisted on its own; requests keep a snapshot.
type Identity struct {
	name    string
	email   Email
	picture string
}

// NewIdentity requires a valid email. A missing display name falls back to
// the local part of the address.
func NewIdentity(name, email, picture string) (Identity, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Identity{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(e.Value(), "@")
	}
	return Identity{name: name, email: e, picture: strings.TrimSpace(picture)}, nil
}

func (i Identity) Name() string    { return i.name }
func (i Identity) Email() Email    { return i.email }
func (i Identity) Picture() string { return i.picture }

func (i Identity) IsSignedIn() bool {
	return !i.email.IsZero()
}
