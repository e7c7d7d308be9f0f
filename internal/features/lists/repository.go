package lists

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository stores lists with their tasks embedded. Every mutation is a
// single atomic update filtered on the caller being a collaborator, so
// concurrent edits to the same list never overwrite each other.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("lists")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "collaborators", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Insert(ctx context.Context, list *List) error {
	list.CreatedAt = time.Now()
	list.UpdatedAt = list.CreatedAt

	result, err := r.collection.InsertOne(ctx, list)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		list.ID = oid
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*List, error) {
	var list List
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// FindByCollaborator returns every list userID collaborates on, oldest first
func (r *Repository) FindByCollaborator(ctx context.Context, userID primitive.ObjectID) ([]List, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"collaborators": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lists []List
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []List{}
	}
	return lists, nil
}

// memberFilter matches list id only while userID is one of its collaborators
func memberFilter(listID, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": listID, "collaborators": userID}
}

// apply runs a single atomic update and returns the list after it, or nil
// when the filter matched nothing.
func (r *Repository) apply(ctx context.Context, filter, update bson.M, extra ...*options.FindOneAndUpdateOptions) (*List, error) {
	update["$currentDate"] = bson.M{"updatedAt": true}

	opts := append([]*options.FindOneAndUpdateOptions{
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	}, extra...)

	var list List
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts...).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *Repository) PushTask(ctx context.Context, listID, userID primitive.ObjectID, task Task) (*List, error) {
	return r.apply(ctx, memberFilter(listID, userID), bson.M{
		"$push": bson.M{"tasks": task},
	})
}

func (r *Repository) PullTask(ctx context.Context, listID, userID, taskID primitive.ObjectID) (*List, error) {
	return r.apply(ctx, memberFilter(listID, userID), bson.M{
		"$pull": bson.M{"tasks": bson.M{"_id": taskID}},
	})
}

// setTaskField updates one field of the task entry taskID. The entry is
// addressed through an array filter since the query also matches on
// collaborators, which would make the positional $ operator ambiguous.
func (r *Repository) setTaskField(ctx context.Context, listID, userID, taskID primitive.ObjectID, field string, value interface{}) (*List, error) {
	filter := memberFilter(listID, userID)
	filter["tasks._id"] = taskID

	opts := options.FindOneAndUpdate().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"t._id": taskID}},
	})

	return r.apply(ctx, filter, bson.M{
		"$set": bson.M{"tasks.$[t]." + field: value},
	}, opts)
}

func (r *Repository) SetTaskComplete(ctx context.Context, listID, userID, taskID primitive.ObjectID, complete bool) (*List, error) {
	return r.setTaskField(ctx, listID, userID, taskID, "complete", complete)
}

func (r *Repository) SetTaskTitle(ctx context.Context, listID, userID, taskID primitive.ObjectID, title string) (*List, error) {
	return r.setTaskField(ctx, listID, userID, taskID, "title", title)
}

func (r *Repository) SetTitle(ctx context.Context, listID, userID primitive.ObjectID, title string) (*List, error) {
	return r.apply(ctx, memberFilter(listID, userID), bson.M{
		"$set": bson.M{"title": title},
	})
}

func (r *Repository) AddCollaborator(ctx context.Context, listID, userID, collaboratorID primitive.ObjectID) (*List, error) {
	return r.apply(ctx, memberFilter(listID, userID), bson.M{
		"$addToSet": bson.M{"collaborators": collaboratorID},
	})
}

// RemoveCollaborator never matches when collaboratorID is the owner
func (r *Repository) RemoveCollaborator(ctx context.Context, listID, userID, collaboratorID primitive.ObjectID) (*List, error) {
	filter := memberFilter(listID, userID)
	filter["owner"] = bson.M{"$ne": collaboratorID}

	return r.apply(ctx, filter, bson.M{
		"$pull": bson.M{"collaborators": collaboratorID},
	})
}

// Delete removes the list with all of its tasks and returns what was removed
func (r *Repository) Delete(ctx context.Context, listID, userID primitive.ObjectID) (*List, error) {
	var list List
	err := r.collection.FindOneAndDelete(ctx, memberFilter(listID, userID)).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}
