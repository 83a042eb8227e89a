package taskstore_test

import (
	"testing"

	taskstore "github.com/dalemusser/taskdeck/internal/app/store/tasks"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/dalemusser/taskdeck/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListByOwner_Mongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := taskstore.New(db)
	seed := []models.Task{
		{ID: "t1", Name: "one", Owner: "u1"},
		{ID: "t2", Name: "two", Owner: "u1", IsComplete: true},
		{ID: "t3", Name: "other owner", Owner: "u2"},
	}
	for _, task := range seed {
		if err := store.Insert(ctx, task); err != nil {
			t.Fatalf("insert %s: %v", task.ID, err)
		}
	}

	got, err := store.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("tasks: got %d, want 2", len(got))
	}
	for _, task := range got {
		if task.Owner != "u1" {
			t.Errorf("task %s has owner %q", task.ID, task.Owner)
		}
	}
}

func TestListByOwner_Mongo_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := taskstore.New(db).ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("tasks: got %d, want 0", len(got))
	}
}

func TestUpdate_Mongo_SetsOnlyGivenFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := taskstore.New(db)
	if err := store.Insert(ctx, models.Task{ID: "t1", Name: "draft", Owner: "u1", Group: "g1"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := store.Update(ctx, "t1", bson.M{"isComplete": true}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("tasks: got %d, want 1", len(got))
	}
	if !got[0].IsComplete {
		t.Error("isComplete not set")
	}
	if got[0].Name != "draft" || got[0].Group != "g1" {
		t.Errorf("untouched fields changed: %+v", got[0])
	}
}
