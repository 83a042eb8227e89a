package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/taskdeck/internal/app/system/auth"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name and password.
// Returns the created user with its generated id.
func (f *Fixtures) CreateUser(ctx context.Context, name, password string) models.User {
	f.t.Helper()

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: auth.HashPassword(password),
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTask creates a test task owned by the given user id.
func (f *Fixtures) CreateTask(ctx context.Context, name, ownerID string) models.Task {
	f.t.Helper()

	task := models.Task{
		ID:    uuid.NewString(),
		Name:  name,
		Owner: ownerID,
	}

	_, err := f.db.Collection("tasks").InsertOne(ctx, task)
	if err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}

	return task
}

// CreateComment creates a test comment on the given task by the given
// owner.
func (f *Fixtures) CreateComment(ctx context.Context, taskID, ownerID, content string) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ID:      uuid.NewString(),
		Task:    taskID,
		Owner:   ownerID,
		Content: content,
	}

	_, err := f.db.Collection("comments").InsertOne(ctx, comment)
	if err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}

	return comment
}

// CreateGroup creates a test group owned by the given user id.
func (f *Fixtures) CreateGroup(ctx context.Context, name, ownerID string) models.Group {
	f.t.Helper()

	group := models.Group{
		ID:    uuid.NewString(),
		Owner: ownerID,
		Name:  name,
	}

	_, err := f.db.Collection("groups").InsertOne(ctx, group)
	if err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}

	return group
}
