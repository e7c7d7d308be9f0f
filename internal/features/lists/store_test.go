package lists

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/features/auth"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// memStore mirrors the Repository semantics in memory: each mutation is
// applied under one lock and only when the actor is a collaborator.
type memStore struct {
	mu    sync.Mutex
	lists []*List
	err   error
}

func clone(l *List) *List {
	c := *l
	c.Collaborators = append([]primitive.ObjectID(nil), l.Collaborators...)
	c.Tasks = append([]Task{}, l.Tasks...)
	return &c
}

func (m *memStore) Insert(_ context.Context, list *List) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	list.ID = primitive.NewObjectID()
	m.lists = append(m.lists, clone(list))
	return nil
}

func (m *memStore) find(id primitive.ObjectID) *List {
	for _, l := range m.lists {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (m *memStore) FindByID(_ context.Context, id primitive.ObjectID) (*List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if l := m.find(id); l != nil {
		return clone(l), nil
	}
	return nil, nil
}

func (m *memStore) FindByCollaborator(_ context.Context, userID primitive.ObjectID) ([]List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []List{}
	for _, l := range m.lists {
		if l.HasCollaborator(userID) {
			out = append(out, *clone(l))
		}
	}
	return out, nil
}

// mutate applies fn to the list when userID collaborates on it. fn returns
// false when its own filter does not match.
func (m *memStore) mutate(listID, userID primitive.ObjectID, fn func(l *List) bool) (*List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	l := m.find(listID)
	if l == nil || !l.HasCollaborator(userID) {
		return nil, nil
	}
	if !fn(l) {
		return nil, nil
	}
	return clone(l), nil
}

func (m *memStore) PushTask(_ context.Context, listID, userID primitive.ObjectID, task Task) (*List, error) {
	return m.mutate(listID, userID, func(l *List) bool {
		l.Tasks = append(l.Tasks, task)
		return true
	})
}

func (m *memStore) PullTask(_ context.Context, listID, userID, taskID primitive.ObjectID) (*List, error) {
	return m.mutate(listID, userID, func(l *List) bool {
		kept := l.Tasks[:0]
		for _, t := range l.Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		l.Tasks = kept
		return true
	})
}

func (m *memStore) setTask(listID, userID, taskID primitive.ObjectID, set func(t *Task)) (*List, error) {
	return m.mutate(listID, userID, func(l *List) bool {
		for i := range l.Tasks {
			if l.Tasks[i].ID == taskID {
				set(&l.Tasks[i])
				return true
			}
		}
		return false
	})
}

func (m *memStore) SetTaskComplete(_ context.Context, listID, userID, taskID primitive.ObjectID, complete bool) (*List, error) {
	return m.setTask(listID, userID, taskID, func(t *Task) { t.Complete = complete })
}

func (m *memStore) SetTaskTitle(_ context.Context, listID, userID, taskID primitive.ObjectID, title string) (*List, error) {
	return m.setTask(listID, userID, taskID, func(t *Task) { t.Title = title })
}

func (m *memStore) SetTitle(_ context.Context, listID, userID primitive.ObjectID, title string) (*List, error) {
	return m.mutate(listID, userID, func(l *List) bool {
		l.Title = title
		return true
	})
}

func (m *memStore) AddCollaborator(_ context.Context, listID, userID, collaboratorID primitive.ObjectID) (*List, error) {
	return m.mutate(listID, userID, func(l *List) bool {
		if !l.HasCollaborator(collaboratorID) {
			l.Collaborators = append(l.Collaborators, collaboratorID)
		}
		return true
	})
}

func (m *memStore) RemoveCollaborator(_ context.Context, listID, userID, collaboratorID primitive.ObjectID) (*List, error) {
	return m.mutate(listID, userID, func(l *List) bool {
		if l.Owner == collaboratorID {
			return false
		}
		kept := l.Collaborators[:0]
		for _, id := range l.Collaborators {
			if id != collaboratorID {
				kept = append(kept, id)
			}
		}
		l.Collaborators = kept
		return true
	})
}

func (m *memStore) Delete(_ context.Context, listID, userID primitive.ObjectID) (*List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i, l := range m.lists {
		if l.ID == listID && l.HasCollaborator(userID) {
			m.lists = append(m.lists[:i], m.lists[i+1:]...)
			return l, nil
		}
	}
	return nil, nil
}

type memUsers map[string]*auth.User

func (u memUsers) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if user, ok := u[username]; ok {
		return user, nil
	}
	return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
}

var errStoreDown = errors.New("no reachable servers")
