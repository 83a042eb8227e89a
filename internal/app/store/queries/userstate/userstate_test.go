package userstate_test

import (
	"context"
	"testing"

	"github.com/dalemusser/taskdeck/internal/app/store/queries/userstate"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/dalemusser/taskdeck/internal/testutil"
)

func newFakeAssembler() (*userstate.Assembler, *testutil.FakeTaskStore, *testutil.FakeCommentStore, *testutil.FakeUserStore, *testutil.FakeGroupStore) {
	tasks := &testutil.FakeTaskStore{TasksByOwner: map[string][]models.Task{}}
	comments := &testutil.FakeCommentStore{}
	users := &testutil.FakeUserStore{Users: map[string]models.User{}}
	groups := &testutil.FakeGroupStore{GroupsByOwner: map[string][]models.Group{}}
	a := &userstate.Assembler{Tasks: tasks, Comments: comments, Users: users, Groups: groups}
	return a, tasks, comments, users, groups
}

func TestAssemble_NilUser(t *testing.T) {
	a, _, _, _, _ := newFakeAssembler()

	_, err := a.Assemble(context.Background(), nil)
	if err != userstate.ErrMissingUser {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
}

func TestAssemble_UserWithoutID(t *testing.T) {
	a, _, _, _, _ := newFakeAssembler()

	_, err := a.Assemble(context.Background(), &models.User{Name: "x"})
	if err != userstate.ErrMissingUser {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
}

func TestAssemble_NilUser_NoStoreAccess(t *testing.T) {
	a, tasks, comments, _, _ := newFakeAssembler()

	_, _ = a.Assemble(context.Background(), nil)

	if tasks.Calls != 0 || comments.Calls != 0 {
		t.Errorf("expected no store access for nil user, got tasks=%d comments=%d calls",
			tasks.Calls, comments.Calls)
	}
}

func TestAssemble_ZeroTasks(t *testing.T) {
	a, _, comments, users, _ := newFakeAssembler()
	users.Users["u1"] = models.User{ID: "u1", Name: "alice"}

	state, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(state.Comments) != 0 {
		t.Errorf("expected no comments, got %d", len(state.Comments))
	}
	if state.Comments == nil {
		t.Error("expected comments to be an empty slice, not nil")
	}

	// The comment query must still be issued, with an empty filter.
	if comments.Calls != 1 {
		t.Errorf("expected comment query to be issued once, got %d calls", comments.Calls)
	}
	if comments.AskedTaskIDs == nil || len(comments.AskedTaskIDs) != 0 {
		t.Errorf("expected empty (non-nil) task id filter, got %v", comments.AskedTaskIDs)
	}
}

func TestAssemble_OwnerListPreservesDuplicates(t *testing.T) {
	a, tasks, _, users, _ := newFakeAssembler()
	users.Users["u1"] = models.User{ID: "u1", Name: "alice"}
	tasks.TasksByOwner["u1"] = []models.Task{
		{ID: "t1", Name: "one", Owner: "u1"},
		{ID: "t2", Name: "two", Owner: "u1"},
		{ID: "t3", Name: "three", Owner: "u1"},
	}

	_, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	// One entry per task, all the requester's id, duplicates intact.
	if len(users.AskedIDs) != 3 {
		t.Fatalf("owner id list: got %d entries, want 3", len(users.AskedIDs))
	}
	for i, id := range users.AskedIDs {
		if id != "u1" {
			t.Errorf("owner id %d: got %q, want %q", i, id, "u1")
		}
	}
}

func TestAssemble_CommentOwnersDoNotFeedUserLookup(t *testing.T) {
	a, tasks, comments, users, _ := newFakeAssembler()
	users.Users["u1"] = models.User{ID: "u1", Name: "alice"}
	users.Users["u2"] = models.User{ID: "u2", Name: "bob"}
	tasks.TasksByOwner["u1"] = []models.Task{{ID: "t1", Name: "one", Owner: "u1"}}
	comments.Comments = []models.Comment{{ID: "c1", Task: "t1", Owner: "u2", Content: "hi"}}

	state, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	// The comment by u2 is in the state, but u2 never enters the
	// related-user lookup.
	if len(state.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(state.Comments))
	}
	for _, id := range users.AskedIDs {
		if id == "u2" {
			t.Error("comment owner leaked into the related-user lookup")
		}
	}
	for _, u := range state.Users {
		if u.ID == "u2" {
			t.Error("comment owner appeared in state.Users")
		}
	}
}

func TestAssemble_UsersStartsWithOwnDocument(t *testing.T) {
	a, tasks, _, users, _ := newFakeAssembler()
	users.Users["u1"] = models.User{ID: "u1", Name: "alice"}
	tasks.TasksByOwner["u1"] = []models.Task{
		{ID: "t1", Name: "one", Owner: "u1"},
		{ID: "t2", Name: "two", Owner: "u1"},
	}

	state, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	// Own document first, then the membership query result. The store
	// matches each document once however many times its id repeats in
	// the filter, so u1 appears exactly twice in total.
	if len(state.Users) != 2 {
		t.Fatalf("users: got %d entries, want 2", len(state.Users))
	}
	if state.Users[0].Name != "alice" {
		t.Errorf("first user: got %q, want own document", state.Users[0].Name)
	}
}

func TestAssemble_OwnDocumentMissIsTolerated(t *testing.T) {
	a, _, _, _, _ := newFakeAssembler()

	state, err := a.Assemble(context.Background(), &models.User{ID: "ghost"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(state.Users) != 0 {
		t.Errorf("expected no user documents for unknown id, got %d", len(state.Users))
	}
	if state.Session.Authenticated != models.SessionMarker {
		t.Errorf("session marker: got %q, want %q", state.Session.Authenticated, models.SessionMarker)
	}
}

func TestAssemble_SessionMarker(t *testing.T) {
	a, _, _, users, _ := newFakeAssembler()
	users.Users["u1"] = models.User{ID: "u1", Name: "alice"}

	state, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if state.Session.Authenticated != "AUTHENTICATED" {
		t.Errorf("session.authenticated: got %q, want %q", state.Session.Authenticated, "AUTHENTICATED")
	}
	if state.Session.ID != "u1" {
		t.Errorf("session.id: got %q, want %q", state.Session.ID, "u1")
	}
}

func TestAssemble_GroupsForOwner(t *testing.T) {
	a, _, _, users, groups := newFakeAssembler()
	users.Users["u1"] = models.User{ID: "u1", Name: "alice"}
	groups.GroupsByOwner["u1"] = []models.Group{
		{ID: "g1", Owner: "u1", Name: "To Do"},
		{ID: "g2", Owner: "u1", Name: "Errands"},
	}
	groups.GroupsByOwner["u2"] = []models.Group{{ID: "g3", Owner: "u2", Name: "Other"}}

	state, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(state.Groups) != 2 {
		t.Fatalf("groups: got %d, want 2", len(state.Groups))
	}
	for _, g := range state.Groups {
		if g.Owner != "u1" {
			t.Errorf("group %s owned by %q, want u1", g.ID, g.Owner)
		}
	}
}

func TestAssemble_StoreErrorPropagates(t *testing.T) {
	a, tasks, _, _, _ := newFakeAssembler()
	tasks.Err = testutil.ErrStoreDown

	_, err := a.Assemble(context.Background(), &models.User{ID: "u1"})
	if err != testutil.ErrStoreDown {
		t.Errorf("expected store error to propagate unchanged, got %v", err)
	}
}

func TestOwnerIDs_Order(t *testing.T) {
	ids := userstate.OwnerIDs([]models.Task{
		{ID: "t1", Owner: "a"},
		{ID: "t2", Owner: "b"},
		{ID: "t3", Owner: "a"},
	})

	want := []string{"a", "b", "a"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d: got %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestOwnerIDs_Empty(t *testing.T) {
	ids := userstate.OwnerIDs(nil)
	if len(ids) != 0 {
		t.Errorf("expected empty list, got %v", ids)
	}
}
