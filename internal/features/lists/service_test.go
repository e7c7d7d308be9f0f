package lists

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/features/auth"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

type fixture struct {
	svc   *Service
	store *memStore
	alice *auth.User
	bob   *auth.User
}

func newFixture() *fixture {
	alice := &auth.User{ID: primitive.NewObjectID(), Username: "alice"}
	bob := &auth.User{ID: primitive.NewObjectID(), Username: "bob"}
	store := &memStore{}
	users := memUsers{"alice": alice, "bob": bob}
	return &fixture{svc: NewService(store, users), store: store, alice: alice, bob: bob}
}

func (f *fixture) groceries(t *testing.T) *List {
	t.Helper()
	list, err := f.svc.CreateList(context.Background(), f.alice.ID, "  Groceries ")
	require.NoError(t, err)
	return list
}

func TestCreateList(t *testing.T) {
	f := newFixture()
	list := f.groceries(t)

	require.False(t, list.ID.IsZero())
	require.Equal(t, "Groceries", list.Title)
	require.Equal(t, f.alice.ID, list.Owner)
	require.Equal(t, []primitive.ObjectID{f.alice.ID}, list.Collaborators)
	require.Empty(t, list.Tasks)
}

func TestCreateListValidatesTitle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateList(ctx, f.alice.ID, "   ")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.CreateList(ctx, f.alice.ID, strings.Repeat("x", MaxListTitleLength+1))
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Empty(t, f.store.lists)
}

func TestListAllOnlyShowsCollaborations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first := f.groceries(t)
	_, err := f.svc.CreateList(ctx, f.bob.ID, "Bob's chores")
	require.NoError(t, err)
	second, err := f.svc.CreateList(ctx, f.alice.ID, "Work")
	require.NoError(t, err)

	lists, err := f.svc.ListAll(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, first.ID, lists[0].ID)
	require.Equal(t, second.ID, lists[1].ID)
}

func TestAddTaskThenGetTasks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	updated, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: " milk "})
	require.NoError(t, err)
	require.Len(t, updated.Tasks, 1)

	tasks, err := f.svc.GetTasks(ctx, f.alice.ID, list.ID.Hex())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "milk", tasks[0].Title)
	require.False(t, tasks[0].Complete)
	require.False(t, tasks[0].ID.IsZero())

	_, err = f.svc.SetTaskCompletion(ctx, f.alice.ID, list.ID.Hex(), tasks[0].ID.Hex(), true)
	require.NoError(t, err)

	tasks, err = f.svc.GetTasks(ctx, f.alice.ID, list.ID.Hex())
	require.NoError(t, err)
	require.True(t, tasks[0].Complete)
}

func TestAddTaskKeepsOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	for _, title := range []string{"milk", "eggs", "bread"} {
		_, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: title})
		require.NoError(t, err)
	}

	tasks, err := f.svc.GetTasks(ctx, f.alice.ID, list.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "milk", tasks[0].Title)
	require.Equal(t, "eggs", tasks[1].Title)
	require.Equal(t, "bread", tasks[2].Title)
}

func TestAddTaskRejectsEmptyTitle(t *testing.T) {
	f := newFixture()
	list := f.groceries(t)

	_, err := f.svc.AddTask(context.Background(), f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "  "})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRemoveTask(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	updated, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "milk"})
	require.NoError(t, err)
	updated, err = f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "eggs"})
	require.NoError(t, err)

	updated, err = f.svc.RemoveTask(ctx, f.alice.ID, list.ID.Hex(), updated.Tasks[0].ID.Hex())
	require.NoError(t, err)
	require.Len(t, updated.Tasks, 1)
	require.Equal(t, "eggs", updated.Tasks[0].Title)
}

func TestRemoveMissingTaskIsNoop(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	before, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "milk"})
	require.NoError(t, err)

	after, err := f.svc.RemoveTask(ctx, f.alice.ID, list.ID.Hex(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	require.Equal(t, before.Tasks, after.Tasks)
}

func TestSetCompletionMissingTask(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	_, err := f.svc.SetTaskCompletion(ctx, f.alice.ID, list.ID.Hex(), primitive.NewObjectID().Hex(), true)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Equal(t, "Task not found", apperrors.Message(err))

	_, err = f.svc.SetTaskCompletion(ctx, f.alice.ID, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), true)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Equal(t, "List not found", apperrors.Message(err))
}

func TestRenameTaskAndList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	updated, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "milk"})
	require.NoError(t, err)

	updated, err = f.svc.RenameTask(ctx, f.alice.ID, list.ID.Hex(), updated.Tasks[0].ID.Hex(), "oat milk")
	require.NoError(t, err)
	require.Equal(t, "oat milk", updated.Tasks[0].Title)

	updated, err = f.svc.RenameList(ctx, f.alice.ID, list.ID.Hex(), " Weekly shop ")
	require.NoError(t, err)
	require.Equal(t, "Weekly shop", updated.Title)

	_, err = f.svc.RenameList(ctx, f.alice.ID, list.ID.Hex(), "")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNonCollaboratorIsForbidden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)
	withTask, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "milk"})
	require.NoError(t, err)
	lid := list.ID.Hex()
	tid := withTask.Tasks[0].ID.Hex()

	calls := map[string]func() error{
		"getTasks": func() error { _, err := f.svc.GetTasks(ctx, f.bob.ID, lid); return err },
		"addTask": func() error {
			_, err := f.svc.AddTask(ctx, f.bob.ID, lid, AddTaskRequest{Title: "beer"})
			return err
		},
		"removeTask":        func() error { _, err := f.svc.RemoveTask(ctx, f.bob.ID, lid, tid); return err },
		"setTaskCompletion": func() error { _, err := f.svc.SetTaskCompletion(ctx, f.bob.ID, lid, tid, true); return err },
		"renameTask":        func() error { _, err := f.svc.RenameTask(ctx, f.bob.ID, lid, tid, "beer"); return err },
		"renameList":        func() error { _, err := f.svc.RenameList(ctx, f.bob.ID, lid, "Mine"); return err },
		"deleteList":        func() error { _, err := f.svc.DeleteList(ctx, f.bob.ID, lid); return err },
		"addCollaborator":   func() error { _, err := f.svc.AddCollaborator(ctx, f.bob.ID, lid, "bob"); return err },
		"removeCollaborator": func() error {
			_, err := f.svc.RemoveCollaborator(ctx, f.bob.ID, lid, f.alice.ID.Hex())
			return err
		},
	}

	for name, call := range calls {
		require.ErrorIs(t, call(), apperrors.ErrForbidden, name)
	}

	tasks, err := f.svc.GetTasks(ctx, f.alice.ID, lid)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "milk", tasks[0].Title)
	require.False(t, tasks[0].Complete)
}

func TestDeleteListCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)
	_, err := f.svc.AddTask(ctx, f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "milk"})
	require.NoError(t, err)

	deleted, err := f.svc.DeleteList(ctx, f.alice.ID, list.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, list.ID, deleted.ID)
	require.Len(t, deleted.Tasks, 1)

	_, err = f.svc.GetTasks(ctx, f.alice.ID, list.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.svc.DeleteList(ctx, f.alice.ID, list.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSharingWithCollaborator(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	shared, err := f.svc.AddCollaborator(ctx, f.alice.ID, list.ID.Hex(), "bob")
	require.NoError(t, err)
	require.True(t, shared.HasCollaborator(f.bob.ID))

	// adding twice keeps the set a set
	shared, err = f.svc.AddCollaborator(ctx, f.alice.ID, list.ID.Hex(), "bob")
	require.NoError(t, err)
	require.Len(t, shared.Collaborators, 2)

	_, err = f.svc.AddTask(ctx, f.bob.ID, list.ID.Hex(), AddTaskRequest{Title: "beer"})
	require.NoError(t, err)

	bobs, err := f.svc.ListAll(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, bobs, 1)

	_, err = f.svc.AddCollaborator(ctx, f.alice.ID, list.ID.Hex(), "carol")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOwnerCannotBeRemoved(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)
	_, err := f.svc.AddCollaborator(ctx, f.alice.ID, list.ID.Hex(), "bob")
	require.NoError(t, err)

	_, err = f.svc.RemoveCollaborator(ctx, f.bob.ID, list.ID.Hex(), f.alice.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrValidation)

	updated, err := f.svc.RemoveCollaborator(ctx, f.alice.ID, list.ID.Hex(), f.bob.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{f.alice.ID}, updated.Collaborators)

	_, err = f.svc.GetTasks(ctx, f.bob.ID, list.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestInvalidIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)

	_, err := f.svc.GetTasks(ctx, f.alice.ID, "not-an-id")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.RemoveTask(ctx, f.alice.ID, list.ID.Hex(), "zzz")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStoreFailureIsRequestInvalid(t *testing.T) {
	f := newFixture()
	list := f.groceries(t)
	f.store.err = errStoreDown

	_, err := f.svc.ListAll(context.Background(), f.alice.ID)
	require.ErrorIs(t, err, apperrors.ErrRequestInvalid)

	_, err = f.svc.AddTask(context.Background(), f.alice.ID, list.ID.Hex(), AddTaskRequest{Title: "milk"})
	require.ErrorIs(t, err, apperrors.ErrRequestInvalid)
	require.NotContains(t, err.Error(), "reachable")
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	list := f.groceries(t)
	_, err := f.svc.AddCollaborator(ctx, f.alice.ID, list.ID.Hex(), "bob")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := f.alice.ID
			if i%2 == 0 {
				actor = f.bob.ID
			}
			_, err := f.svc.AddTask(ctx, actor, list.ID.Hex(), AddTaskRequest{Title: "item"})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	tasks, err := f.svc.GetTasks(ctx, f.alice.ID, list.ID.Hex())
	require.NoError(t, err)
	require.Len(t, tasks, 50)
}
