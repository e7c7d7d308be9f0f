package lists

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/features/auth"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// Store persists lists. Mutations take the acting user and must apply
// atomically only when that user is a collaborator; they return (nil, nil)
// when nothing matched. FindByID returns (nil, nil) for a missing list.
type Store interface {
	Insert(ctx context.Context, list *List) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*List, error)
	FindByCollaborator(ctx context.Context, userID primitive.ObjectID) ([]List, error)
	PushTask(ctx context.Context, listID, userID primitive.ObjectID, task Task) (*List, error)
	PullTask(ctx context.Context, listID, userID, taskID primitive.ObjectID) (*List, error)
	SetTaskComplete(ctx context.Context, listID, userID, taskID primitive.ObjectID, complete bool) (*List, error)
	SetTaskTitle(ctx context.Context, listID, userID, taskID primitive.ObjectID, title string) (*List, error)
	SetTitle(ctx context.Context, listID, userID primitive.ObjectID, title string) (*List, error)
	AddCollaborator(ctx context.Context, listID, userID, collaboratorID primitive.ObjectID) (*List, error)
	RemoveCollaborator(ctx context.Context, listID, userID, collaboratorID primitive.ObjectID) (*List, error)
	Delete(ctx context.Context, listID, userID primitive.ObjectID) (*List, error)
}

// UserFinder resolves usernames when sharing a list
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*auth.User, error)
}

var (
	errListNotFound = apperrors.New(apperrors.ErrNotFound, "List not found")
	errTaskNotFound = apperrors.New(apperrors.ErrNotFound, "Task not found")
	errNotMember    = apperrors.New(apperrors.ErrForbidden, "You are not a collaborator on this list")
)

// Service enforces who may read and change a list and its tasks
type Service struct {
	store Store
	users UserFinder
}

func NewService(store Store, users UserFinder) *Service {
	return &Service{store: store, users: users}
}

func storeError(err error) error {
	return apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
}

// access loads the list and checks that userID collaborates on it
func (s *Service) access(ctx context.Context, listID, userID primitive.ObjectID) (*List, error) {
	list, err := s.store.FindByID(ctx, listID)
	if err != nil {
		return nil, storeError(err)
	}
	if list == nil {
		return nil, errListNotFound
	}
	if !list.HasCollaborator(userID) {
		return nil, errNotMember
	}
	return list, nil
}

// settle turns the result of a member-filtered mutation into a list or the
// reason nothing matched. missing is returned when the list is accessible
// but the addressed element is not there.
func (s *Service) settle(ctx context.Context, list *List, err error, listID, userID primitive.ObjectID, missing error) (*List, error) {
	if err != nil {
		return nil, storeError(err)
	}
	if list != nil {
		return list, nil
	}
	if _, err := s.access(ctx, listID, userID); err != nil {
		return nil, err
	}
	if missing != nil {
		return nil, missing
	}
	// the list changed between the update and the lookup
	return nil, errListNotFound
}

// ListAll returns every list the user collaborates on
func (s *Service) ListAll(ctx context.Context, userID primitive.ObjectID) ([]List, error) {
	lists, err := s.store.FindByCollaborator(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return lists, nil
}

// CreateList creates an empty list owned by, and shared only with, userID
func (s *Service) CreateList(ctx context.Context, userID primitive.ObjectID, title string) (*List, error) {
	title, err := NormalizeListTitle(title)
	if err != nil {
		return nil, err
	}

	list := &List{
		Title:         title,
		Owner:         userID,
		Collaborators: []primitive.ObjectID{userID},
		Tasks:         []Task{},
	}
	if err := s.store.Insert(ctx, list); err != nil {
		return nil, storeError(err)
	}
	return list, nil
}

// GetTasks returns the tasks of a list the user collaborates on
func (s *Service) GetTasks(ctx context.Context, userID primitive.ObjectID, listID string) ([]Task, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}

	list, err := s.access(ctx, lid, userID)
	if err != nil {
		return nil, err
	}
	if list.Tasks == nil {
		return []Task{}, nil
	}
	return list.Tasks, nil
}

// AddTask appends a new, incomplete task and returns the updated list
func (s *Service) AddTask(ctx context.Context, userID primitive.ObjectID, listID string, req AddTaskRequest) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	title, err := NormalizeTaskTitle(req.Title)
	if err != nil {
		return nil, err
	}

	task := Task{ID: primitive.NewObjectID(), Title: title, Complete: false}
	list, err := s.store.PushTask(ctx, lid, userID, task)
	return s.settle(ctx, list, err, lid, userID, nil)
}

// RemoveTask deletes a task entry. Removing an id that is not there is a no-op.
func (s *Service) RemoveTask(ctx context.Context, userID primitive.ObjectID, listID, taskID string) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	tid, err := ParseID(taskID, "task")
	if err != nil {
		return nil, err
	}

	list, err := s.store.PullTask(ctx, lid, userID, tid)
	return s.settle(ctx, list, err, lid, userID, nil)
}

// SetTaskCompletion sets the completion flag of one task entry
func (s *Service) SetTaskCompletion(ctx context.Context, userID primitive.ObjectID, listID, taskID string, complete bool) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	tid, err := ParseID(taskID, "task")
	if err != nil {
		return nil, err
	}

	list, err := s.store.SetTaskComplete(ctx, lid, userID, tid, complete)
	return s.settle(ctx, list, err, lid, userID, errTaskNotFound)
}

// RenameTask changes the title of one task entry
func (s *Service) RenameTask(ctx context.Context, userID primitive.ObjectID, listID, taskID, title string) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	tid, err := ParseID(taskID, "task")
	if err != nil {
		return nil, err
	}
	title, err = NormalizeTaskTitle(title)
	if err != nil {
		return nil, err
	}

	list, err := s.store.SetTaskTitle(ctx, lid, userID, tid, title)
	return s.settle(ctx, list, err, lid, userID, errTaskNotFound)
}

// RenameList changes the list title
func (s *Service) RenameList(ctx context.Context, userID primitive.ObjectID, listID, title string) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	title, err = NormalizeListTitle(title)
	if err != nil {
		return nil, err
	}

	list, err := s.store.SetTitle(ctx, lid, userID, title)
	return s.settle(ctx, list, err, lid, userID, nil)
}

// DeleteList removes the list and every task in it, returning what was deleted
func (s *Service) DeleteList(ctx context.Context, userID primitive.ObjectID, listID string) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}

	list, err := s.store.Delete(ctx, lid, userID)
	return s.settle(ctx, list, err, lid, userID, nil)
}

// AddCollaborator shares the list with the user called username
func (s *Service) AddCollaborator(ctx context.Context, userID primitive.ObjectID, listID, username string) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	// check access first so outsiders cannot learn which usernames exist
	if _, err := s.access(ctx, lid, userID); err != nil {
		return nil, err
	}

	other, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	list, err := s.store.AddCollaborator(ctx, lid, userID, other.ID)
	return s.settle(ctx, list, err, lid, userID, nil)
}

// RemoveCollaborator revokes a user's access. The owner cannot be removed.
func (s *Service) RemoveCollaborator(ctx context.Context, userID primitive.ObjectID, listID, collaboratorID string) (*List, error) {
	lid, err := ParseID(listID, "list")
	if err != nil {
		return nil, err
	}
	cid, err := ParseID(collaboratorID, "user")
	if err != nil {
		return nil, err
	}

	list, err := s.store.RemoveCollaborator(ctx, lid, userID, cid)
	if err == nil && list == nil {
		current, accessErr := s.access(ctx, lid, userID)
		if accessErr != nil {
			return nil, accessErr
		}
		if current.Owner == cid {
			return nil, apperrors.New(apperrors.ErrValidation, "The owner cannot be removed from a list")
		}
	}
	return s.settle(ctx, list, err, lid, userID, nil)
}
