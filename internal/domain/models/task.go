// internal/domain/models/task.go
package models

// Task is a single to-do item. Owner references a User id; Group
// references a Group id and is optional.
type Task struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	IsComplete bool   `bson:"isComplete" json:"isComplete"`
	Owner      string `bson:"owner" json:"owner"`
	Group      string `bson:"group,omitempty" json:"group,omitempty"`
}
