package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/dalemusser/taskdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store fakes for unit tests that must run without Mongo.
// They mirror the semantics the Mongo stores provide, including $in
// behavior: membership filters match each stored document at most
// once regardless of duplicates in the filter list.

// ErrStoreDown simulates an unreachable store.
var ErrStoreDown = errors.New("store unreachable")

// FakeTaskStore serves a fixed task list and records the owner id it
// was asked for.
type FakeTaskStore struct {
	TasksByOwner map[string][]models.Task
	Err          error

	AskedOwner string
	Calls      int
}

func (f *FakeTaskStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	f.AskedOwner = ownerID
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.TasksByOwner[ownerID], nil
}

// FakeCommentStore records the task-id filter of every query.
type FakeCommentStore struct {
	Comments []models.Comment
	Err      error

	AskedTaskIDs []string
	Calls        int
}

func (f *FakeCommentStore) ListByTasks(ctx context.Context, taskIDs []string) ([]models.Comment, error) {
	f.AskedTaskIDs = taskIDs
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	set := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		set[id] = struct{}{}
	}
	var out []models.Comment
	for _, c := range f.Comments {
		if _, ok := set[c.Task]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// FakeUserStore holds user documents keyed by id and records the id
// lists passed to GetByIDs. Safe for concurrent use so registration
// race tests can share one instance.
type FakeUserStore struct {
	mu    sync.Mutex
	Users map[string]models.User
	Err   error

	// CreateErr fails Create alone, so tests can make an insert lose a
	// uniqueness race after a clean NameExists check.
	CreateErr error

	AskedIDs []string
}

func (f *FakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	u, ok := f.Users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func (f *FakeUserStore) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AskedIDs = ids
	if f.Err != nil {
		return nil, f.Err
	}
	seen := make(map[string]struct{}, len(ids))
	var out []models.User
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if u, ok := f.Users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *FakeUserStore) GetByName(ctx context.Context, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, u := range f.Users {
		if u.Name == name {
			u := u
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *FakeUserStore) NameExists(ctx context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	for _, u := range f.Users {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeUserStore) Create(ctx context.Context, u models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if f.CreateErr != nil {
		return f.CreateErr
	}
	if f.Users == nil {
		f.Users = make(map[string]models.User)
	}
	f.Users[u.ID] = u
	return nil
}

// FakeGroupStore serves fixed group lists and records inserts. Safe
// for concurrent use.
type FakeGroupStore struct {
	mu            sync.Mutex
	GroupsByOwner map[string][]models.Group
	Err           error

	Inserted []models.Group
}

func (f *FakeGroupStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.GroupsByOwner[ownerID], nil
}

func (f *FakeGroupStore) Insert(ctx context.Context, g models.Group) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Inserted = append(f.Inserted, g)
	if f.GroupsByOwner == nil {
		f.GroupsByOwner = make(map[string][]models.Group)
	}
	f.GroupsByOwner[g.Owner] = append(f.GroupsByOwner[g.Owner], g)
	return nil
}
