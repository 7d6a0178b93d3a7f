package models

// UserProfile is stored under users/{uid}.
type UserProfile struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Zone      string `json:"zone"`
	CreatedAt string `json:"createdAt"`
}

// Session is the identity resolved from a session token.
type Session struct {
	UserID string
	Email  string
	Role   Role
}
