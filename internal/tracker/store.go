package tracker

import (
	"sync"

	"github.com/gupio/tracker/internal/model"
)

// FilterAll is the pseudo-value that disables a field filter.
const FilterAll = "all"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortDueDate  SortKey = "dueDate"
	SortPriority SortKey = "priority"
)

// FilterConfig is the active search/filter/sort selection. It is owned by
// the Store and mutated only through the Set* methods.
type FilterConfig struct {
	Search   string
	Status   string // a Status value or "all"
	Priority string // a Priority value or "all"
	Tag      string // a tag or "all"
	Sort     SortKey
}

func DefaultFilters() FilterConfig {
	return FilterConfig{
		Status:   FilterAll,
		Priority: FilterAll,
		Tag:      FilterAll,
		Sort:     SortNewest,
	}
}

// Store is the single source of truth for the view layer: the live task
// collection, the active FilterConfig and a loading indicator. The
// collection is mutated only by the Coordinator, and only after the backend
// confirms — readers always see a confirmed state.
type Store struct {
	mu       sync.RWMutex
	tasks    []model.Task
	filters  FilterConfig
	inFlight int
}

func NewStore() *Store {
	return &Store{filters: DefaultFilters()}
}

// Tasks returns a copy of the full collection, in collection order.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// View returns the collection with the active filters and sort applied.
// Derived on every call, never cached.
func (s *Store) View() []model.Task {
	s.mu.RLock()
	tasks := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = t.Clone()
	}
	f := s.filters
	s.mu.RUnlock()
	return ApplyFilters(tasks, f)
}

func (s *Store) Filters() FilterConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Loading reports whether any list-touching operation is still in flight.
// Counted per operation so an overlapping completion can't clear the flag
// early.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

func (s *Store) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = q
}

func (s *Store) SetStatusFilter(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Status = v
}

func (s *Store) SetPriorityFilter(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Priority = v
}

func (s *Store) SetTagFilter(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Tag = v
}

func (s *Store) SetSort(k SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Sort = k
}

// --- coordinator-side mutations ---

func (s *Store) beginOp() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *Store) endOp() {
	s.mu.Lock()
	if s.inFlight > 0 {
		s.inFlight--
	}
	s.mu.Unlock()
}

func (s *Store) replaceAll(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

func (s *Store) appendTask(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
}

func (s *Store) replaceTask(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return
		}
	}
}

func (s *Store) removeTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}
