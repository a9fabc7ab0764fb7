package models

// Identity is what the external identity provider asserts about a signed-in
// user. It is immutable for the lifetime of a session and replaced wholesale
// on re-authentication; the mutable platform state lives in UserProfile.
type Identity struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
