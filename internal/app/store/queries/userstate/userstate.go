// Package userstate builds the aggregate per-user view returned by
// login and registration: the user's tasks, the comments on those
// tasks, the user documents referenced by them, and the user's groups.
package userstate

import (
	"context"
	"errors"

	commentstore "github.com/dalemusser/taskdeck/internal/app/store/comments"
	groupstore "github.com/dalemusser/taskdeck/internal/app/store/groups"
	taskstore "github.com/dalemusser/taskdeck/internal/app/store/tasks"
	userstore "github.com/dalemusser/taskdeck/internal/app/store/users"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMissingUser is returned when Assemble is called without a user or
// with a user that has no id. Checked before any store access.
var ErrMissingUser = errors.New("user with id is required to assemble state")

// TaskLister, CommentLister, UserGetter, and GroupLister are the
// read-only store operations the assembler needs. The Mongo stores in
// internal/app/store satisfy them; tests substitute in-memory fakes.
type TaskLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
}

type CommentLister interface {
	ListByTasks(ctx context.Context, taskIDs []string) ([]models.Comment, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

type GroupLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Group, error)
}

// Assembler reconstructs a consistent cross-entity view for a user.
// It is read-only: it never writes to any collection, and store errors
// propagate to the caller unmodified.
type Assembler struct {
	Tasks    TaskLister
	Comments CommentLister
	Users    UserGetter
	Groups   GroupLister
}

// FromDB wires an Assembler to the concrete Mongo stores.
func FromDB(db *mongo.Database) *Assembler {
	return &Assembler{
		Tasks:    taskstore.New(db),
		Comments: commentstore.New(db),
		Users:    userstore.New(db),
		Groups:   groupstore.New(db),
	}
}

// Assemble builds the UserState for the given user. Only user.ID is
// consulted; the full user document is re-fetched from the store, so a
// minimal not-yet-read-back user (as register passes) works.
func (a *Assembler) Assemble(ctx context.Context, user *models.User) (*models.UserState, error) {
	if user == nil || user.ID == "" {
		return nil, ErrMissingUser
	}

	tasks, err := a.Tasks.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	// Always issued, even with zero task ids.
	comments, err := a.Comments.ListByTasks(ctx, taskIDs)
	if err != nil {
		return nil, err
	}

	// Related users are looked up by the owner ids collected from the
	// task list. Comment owners are NOT included: the API this mirrors
	// never fed them into the lookup, and its clients were built
	// against that, so the omission is load-bearing. Duplicates are
	// preserved in the filter; $in matches each document once.
	ownerIDs := OwnerIDs(tasks)

	related, err := a.Users.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(related)+1)
	own, err := a.Users.GetByID(ctx, user.ID)
	switch {
	case err == nil && own != nil:
		users = append(users, *own)
	case err == mongo.ErrNoDocuments:
		// A missing own document is tolerated; it is simply absent
		// from the result.
	case err != nil:
		return nil, err
	}
	users = append(users, related...)

	groups, err := a.Groups.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Clients expect empty arrays, never null.
	if tasks == nil {
		tasks = []models.Task{}
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	if groups == nil {
		groups = []models.Group{}
	}

	return &models.UserState{
		Session:  models.Session{Authenticated: models.SessionMarker, ID: user.ID},
		Tasks:    tasks,
		Comments: comments,
		Users:    users,
		Groups:   groups,
	}, nil
}

// OwnerIDs returns the owner id of every task, in order, duplicates
// preserved. For a user's own task list this is their id repeated once
// per task.
func OwnerIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.Owner)
	}
	return ids
}
