package groupstore_test

import (
	"testing"

	groupstore "github.com/dalemusser/taskdeck/internal/app/store/groups"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/dalemusser/taskdeck/internal/testutil"
)

func TestListByOwner_Mongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := groupstore.New(db)
	seed := []models.Group{
		{ID: "g1", Owner: "u1", Name: models.DefaultGroupName},
		{ID: "g2", Owner: "u1", Name: "Archived"},
		{ID: "g3", Owner: "u2", Name: models.DefaultGroupName},
	}
	for _, g := range seed {
		if err := store.Insert(ctx, g); err != nil {
			t.Fatalf("insert %s: %v", g.ID, err)
		}
	}

	got, err := store.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("groups: got %d, want 2", len(got))
	}
	for _, g := range got {
		if g.Owner != "u1" {
			t.Errorf("group %s has owner %q", g.ID, g.Owner)
		}
	}
}

func TestListByOwner_Mongo_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := groupstore.New(db).ListByOwner(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("groups: got %d, want 0", len(got))
	}
}
