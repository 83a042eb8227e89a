// internal/domain/models/userstate.go
package models

// SessionMarker is the value clients check on Session.Authenticated.
const SessionMarker = "AUTHENTICATED"

// Session marks an assembled state as belonging to an authenticated
// user.
type Session struct {
	Authenticated string `json:"authenticated"`
	ID            string `json:"id"`
}

// UserState is the aggregate view returned by login and registration:
// the user's tasks, the comments on those tasks, the user documents
// those tasks and comments reference, and the user's groups. It is
// derived on every request and never persisted.
type UserState struct {
	Session  Session   `json:"session"`
	Tasks    []Task    `json:"tasks"`
	Comments []Comment `json:"comments"`
	Users    []User    `json:"users"`
	Groups   []Group   `json:"groups"`
}
