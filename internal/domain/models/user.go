// internal/domain/models/user.go
package models

// User represents an account that can log in and own tasks and groups.
//
// IDs throughout TaskDeck are UUID strings stored in an "id" field,
// not Mongo ObjectIDs; relationships between documents are implicit
// via these shared identifier fields (no foreign-key enforcement).
type User struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`

	// PasswordHash is a deterministic digest of the password.
	// Never serialized to JSON.
	PasswordHash string `bson:"passwordHash" json:"-"`
}
