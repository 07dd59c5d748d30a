// Package models defines the client-side data models: the affiliate record
// returned by the directory, the identity returned by the identity provider,
// and the login form state.
package models

// UserRecord is an affiliate row of the remote users directory. JSON tags
// follow the directory's column names so the persisted session blob stays
// compatible with the mobile app.
type UserRecord struct {
	Email      string `json:"email"`
	Identifier string `json:"dni"`
	Role       string `json:"role"`
	Account    string `json:"account"`
	AvatarURL  string `json:"avatar_url"`
}

// Identity is the identity provider's answer to a successful sign-in.
type Identity struct {
	// UID is the provider-side user id; empty means not signed in.
	UID   string
	Email string
	// Token is the provider session or ID token. It is never persisted.
	Token string
}

// SignedIn reports whether the provider confirmed the user.
func (i *Identity) SignedIn() bool {
	return i != nil && i.UID != ""
}
