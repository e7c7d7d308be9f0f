package tasks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/pkg/pagination"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// Store persists standalone tasks. Update and Delete match on both id and
// owner so that only the owner can touch a task.
type Store interface {
	Insert(ctx context.Context, task *Task) error
	FindByOwner(ctx context.Context, owner primitive.ObjectID, skip, limit int64) (*Page, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*Task, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) (bool, error)
}

var errTaskNotFound = apperrors.New(apperrors.ErrNotFound, "Task not found")

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func storeError(err error) error {
	return apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
}

// ListTasks returns a page of the owner's tasks, newest first
func (s *Service) ListTasks(ctx context.Context, owner primitive.ObjectID, req pagination.Request) ([]Task, *pagination.Pagination, error) {
	page, err := s.store.FindByOwner(ctx, owner, req.Offset(), int64(req.Limit))
	if err != nil {
		return nil, nil, storeError(err)
	}
	return page.Tasks, pagination.New(req, page.Total), nil
}

func (s *Service) CreateTask(ctx context.Context, owner primitive.ObjectID, req CreateTaskRequest) (*Task, error) {
	if err := ValidateCreateTask(&req); err != nil {
		return nil, err
	}

	task := &Task{Text: req.Text, Owner: owner, Deadline: req.Deadline}
	if err := s.store.Insert(ctx, task); err != nil {
		return nil, storeError(err)
	}
	return task, nil
}

// UpdateTask changes text and/or deadline. Tasks owned by someone else are
// reported as not found.
func (s *Service) UpdateTask(ctx context.Context, owner primitive.ObjectID, id string, req UpdateTaskRequest) (*Task, error) {
	oid, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}
	if err := ValidateUpdateTask(&req); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}

	task, err := s.store.Update(ctx, oid, owner, fields)
	if err != nil {
		return nil, storeError(err)
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (s *Service) DeleteTask(ctx context.Context, owner primitive.ObjectID, id string) error {
	oid, err := parseTaskID(id)
	if err != nil {
		return err
	}

	deleted, err := s.store.Delete(ctx, oid, owner)
	if err != nil {
		return storeError(err)
	}
	if !deleted {
		return errTaskNotFound
	}
	return nil
}
