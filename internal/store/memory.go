package store

import (
	"sync"

	"git.sr.ht/~jakintosh/tasks/internal/clock"
	"git.sr.ht/~jakintosh/tasks/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ domain.Store = (*InMemoryStore)(nil)

// InMemoryStore keeps tasks in insertion order with O(1) lookup by id.
type InMemoryStore struct {
	mu    sync.RWMutex
	ids   []string
	tasks map[string]*domain.Task

	dates domain.DateProvider
	log   *zap.Logger
}

type Option func(*InMemoryStore)

// WithDateProvider sets the source of default deadlines for new tasks.
func WithDateProvider(p domain.DateProvider) Option {
	return func(s *InMemoryStore) {
		s.dates = p
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *InMemoryStore) {
		s.log = l
	}
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		ids:   []string{},
		tasks: make(map[string]*domain.Task),
		dates: clock.System{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Create(requirement string) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &domain.Task{
		ID:          uuid.NewString(),
		Status:      domain.StatusTodo,
		Requirement: requirement,
		Deadline:    s.dates.Today(),
	}
	s.ids = append(s.ids, task.ID)
	s.tasks[task.ID] = task

	s.log.Debug("task created",
		zap.String("task_id", task.ID),
		zap.String("deadline", task.Deadline),
	)
	return *task
}

func (s *InMemoryStore) UpdateStatus(id string, status domain.Status) {
	if !status.IsValid() {
		s.log.Warn("rejected invalid status",
			zap.String("task_id", id),
			zap.Stringer("status", status),
		)
		return
	}
	s.update(id, "status", func(t *domain.Task) {
		t.Status = status
	})
}

func (s *InMemoryStore) UpdateRequirement(id string, requirement string) {
	s.update(id, "requirement", func(t *domain.Task) {
		t.Requirement = requirement
	})
}

// UpdateDeadline stores the deadline as given; it is not parsed.
func (s *InMemoryStore) UpdateDeadline(id string, deadline string) {
	s.update(id, "deadline", func(t *domain.Task) {
		t.Deadline = deadline
	})
}

// update applies change to the task in place. Unknown ids are ignored.
func (s *InMemoryStore) update(id, field string, change func(*domain.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		s.log.Debug("update ignored, task not found",
			zap.String("task_id", id),
			zap.String("field", field),
		)
		return
	}
	change(t)
	s.log.Debug("task updated",
		zap.String("task_id", id),
		zap.String("field", field),
	)
}

func (s *InMemoryStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		s.log.Debug("remove ignored, task not found", zap.String("task_id", id))
		return
	}
	delete(s.tasks, id)
	for i, tid := range s.ids {
		if tid == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	s.log.Debug("task removed", zap.String("task_id", id))
}

func (s *InMemoryStore) Get(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return *t, true
}

func (s *InMemoryStore) Deadline(id string) (string, bool) {
	t, ok := s.Get(id)
	if !ok {
		return "", false
	}
	return t.Deadline, true
}

func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// List returns a snapshot of every task in insertion order.
func (s *InMemoryStore) List() []domain.Task {
	return s.filter(func(*domain.Task) bool { return true })
}

// ListByStatus returns a snapshot of the tasks with the given status, in
// insertion order.
func (s *InMemoryStore) ListByStatus(status domain.Status) []domain.Task {
	return s.filter(func(t *domain.Task) bool { return t.Status == status })
}

func (s *InMemoryStore) Todo() []domain.Task {
	return s.ListByStatus(domain.StatusTodo)
}

func (s *InMemoryStore) InProgress() []domain.Task {
	return s.ListByStatus(domain.StatusProgress)
}

func (s *InMemoryStore) Done() []domain.Task {
	return s.ListByStatus(domain.StatusDone)
}

func (s *InMemoryStore) filter(keep func(*domain.Task) bool) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Task, 0, len(s.ids))
	for _, id := range s.ids {
		if t := s.tasks[id]; keep(t) {
			result = append(result, *t)
		}
	}
	return result
}
