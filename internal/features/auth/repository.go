package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usernameIndex = "username_unique"
	emailIndex    = "email_unique"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// Repository handles database interactions for the auth feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndex),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName(emailIndex),
		},
		{
			Keys:    bson.D{{Key: "accessToken", Value: 1}},
			Options: options.Index().SetName("access_token"),
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new user. Unique index violations come back as
// ErrDuplicateUsername or ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if duplicateIndex(err) == emailIndex {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// duplicateIndex names the unique index an E11000 write error tripped over.
// The server reports it as "... index: <name> dup key: { ... }".
func duplicateIndex(err error) string {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return ""
	}
	for _, e := range we.WriteErrors {
		_, rest, ok := strings.Cut(e.Message, "index: ")
		if !ok {
			continue
		}
		if name, _, ok := strings.Cut(rest, " "); ok {
			return name
		}
		return rest
	}
	return ""
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by id
func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUsername finds a user by their username
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByToken finds the user holding the given access token
func (r *Repository) FindByToken(ctx context.Context, token string) (*User, error) {
	return r.findOne(ctx, bson.M{"accessToken": token})
}
