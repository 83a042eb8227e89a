package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/taskdeck/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateName is returned when attempting to create a user with an
// account name that already exists.
var ErrDuplicateName = errors.New("a user with that account name already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by its UUID id. Returns mongo.ErrNoDocuments if
// not found.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByName looks up a user by exact account name. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByName(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// NameExists reports whether an account with the given name exists.
func (s *Store) NameExists(ctx context.Context, name string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"name": name}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// Create inserts a new user document. The caller assigns the id and
// password hash. Returns ErrDuplicateName when the unique name index
// rejects the insert.
func (s *Store) Create(ctx context.Context, u models.User) error {
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// GetByIDs fetches the user documents whose id is in the given list.
// Duplicate ids in the filter are fine: Mongo's $in matches each
// document once regardless of how many times its id appears.
func (s *Store) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if ids == nil {
		ids = []string{}
	}
	cur, err := s.c.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
