package taskstore

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
	return &Store{c: db.Collection("tasks")}
}

// ListByOwner returns every task owned by the given user id.
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	cur, err := s.c.Find(ctx, bson.M{"owner": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new task document.
func (s *Store) Insert(ctx context.Context, t models.Task) error {
	_, err := s.c.InsertOne(ctx, t)
	return err
}

// Update applies a partial update to the task with the given id.
// Fields holds the document fields to $set; unknown ids update nothing
// without error, matching upstream behavior.
func (s *Store) Update(ctx context.Context, id string, fields bson.M) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	return err
}
