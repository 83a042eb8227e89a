package groupstore

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
	return &Store{c: db.Collection("groups")}
}

// ListByOwner returns every group owned by the given user id.
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{"owner": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new group document.
func (s *Store) Insert(ctx context.Context, g models.Group) error {
	_, err := s.c.InsertOne(ctx, g)
	return err
}
