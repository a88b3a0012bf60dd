package models

// User is one account record as stored in the users bucket. Passwords are
// kept in plaintext; this is a local demo store with no auth hardening.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// WithoutPassword returns a copy safe to hold as the session record.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
