package auth

// User is a signed-in account. Immutable once constructed; the session
// store hands out copies, never its own pointer.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Team is the workspace a session belongs to. Exactly one team exists in
// the demo deployment and every authenticated user is assigned to it.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Credential pairs a login email with a password hash and the user it
// resolves to. The email is the directory key.
type Credential struct {
	Email        string
	PasswordHash string
	User         User
}

// State is the observable session snapshot. Invariant: IsAuthenticated is
// true exactly when User is non-nil, and Team is non-nil exactly when User
// is non-nil.
type State struct {
	User            *User `json:"user"`
	Team            *Team `json:"team"`
	IsAuthenticated bool  `json:"is_authenticated"`
	IsLoading       bool  `json:"is_loading"`
}
