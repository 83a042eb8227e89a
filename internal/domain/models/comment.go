// internal/domain/models/comment.go
package models

// Comment is attached to a task. Owner may differ from the task's
// owner (anyone can comment on a task they can see).
type Comment struct {
	ID      string `bson:"id" json:"id"`
	Task    string `bson:"task" json:"task"`
	Owner   string `bson:"owner" json:"owner"`
	Content string `bson:"content" json:"content"`
}
