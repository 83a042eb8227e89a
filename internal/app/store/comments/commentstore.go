package commentstore

import (
	"context"

	"github.com/dalemusser/taskdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("comments")}
}

// ListByTasks returns every comment whose task field is in taskIDs.
// The query runs even when taskIDs is empty (matching zero documents);
// callers rely on the round-trip happening either way.
func (s *Store) ListByTasks(ctx context.Context, taskIDs []string) ([]models.Comment, error) {
	if taskIDs == nil {
		taskIDs = []string{}
	}
	cur, err := s.c.Find(ctx, bson.M{"task": bson.M{"$in": taskIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Comment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new comment document.
func (s *Store) Insert(ctx context.Context, c models.Comment) error {
	_, err := s.c.InsertOne(ctx, c)
	return err
}
