package tasks

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memStore struct {
	mu    sync.Mutex
	tasks []Task
	clock time.Time
	err   error
}

func (m *memStore) Insert(_ context.Context, task *Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	// distinct, increasing timestamps keep newest-first ordering stable
	m.clock = m.clock.Add(time.Second)
	task.ID = primitive.NewObjectID()
	task.CreatedAt = m.clock
	task.UpdatedAt = m.clock
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *memStore) FindByOwner(_ context.Context, owner primitive.ObjectID, skip, limit int64) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	// mongod rejects these the same way
	if skip < 0 || limit < 0 {
		return nil, errors.New("BadValue: skip and limit must be non-negative")
	}
	mine := []Task{}
	for _, t := range m.tasks {
		if t.Owner == owner {
			mine = append(mine, t)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })

	total := int64(len(mine))
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return &Page{Tasks: mine[skip:end], Total: total}, nil
}

func (m *memStore) Update(_ context.Context, id, owner primitive.ObjectID, fields bson.M) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.tasks {
		t := &m.tasks[i]
		if t.ID != id || t.Owner != owner {
			continue
		}
		if text, ok := fields["text"].(string); ok {
			t.Text = text
		}
		if deadline, ok := fields["deadline"].(time.Time); ok {
			t.Deadline = &deadline
		}
		out := *t
		return &out, nil
	}
	return nil, nil
}

func (m *memStore) Delete(_ context.Context, id, owner primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for i, t := range m.tasks {
		if t.ID == id && t.Owner == owner {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var errStoreDown = errors.New("connection refused")
