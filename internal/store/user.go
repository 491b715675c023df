package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agenda-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	const op = "store/CreateUser"

	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	const op = "store/UserByEmail"

	u := &model.User{}
	err := s.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	const op = "store/UserByID"

	u := &model.User{}
	err := s.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ProfessionalByID resolves id only when the user really is a professional.
func (s *Store) ProfessionalByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	const op = "store/ProfessionalByID"

	u := &model.User{}
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "tipo", Value: model.RoleProfessional},
	}
	if err := s.users.FindOne(ctx, filter).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListProfessionals projects nome only; _id rides along by default.
func (s *Store) ListProfessionals(ctx context.Context) ([]model.User, error) {
	const op = "store/ListProfessionals"

	opts := options.Find().SetProjection(bson.D{{Key: "nome", Value: 1}})
	cur, err := s.users.Find(ctx, bson.D{{Key: "tipo", Value: model.RoleProfessional}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []model.User
	for cur.Next(ctx) {
		var u model.User
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		out = append(out, u)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}
	return out, nil
}

// UsersByIDs batch-loads users for response expansion.
func (s *Store) UsersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.User, error) {
	const op = "store/UsersByIDs"

	out := make(map[primitive.ObjectID]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	cur, err := s.users.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u model.User
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		out[u.ID] = u
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}
	return out, nil
}
