// internal/domain/models/group.go
package models

// Group is a named bucket of tasks owned by a user. Every user gets a
// default "To Do" group at registration; task-management flows may
// create more.
type Group struct {
	ID    string `bson:"id" json:"id"`
	Owner string `bson:"owner" json:"owner"`
	Name  string `bson:"name" json:"name"`
}

// DefaultGroupName is the group created for every new user.
const DefaultGroupName = "To Do"
