package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/remote"
)

// Coordinator drives the confirm-then-apply protocol. Every mutation goes
// to the backend first; the in-memory collection changes only once the
// backend confirms, and always to the value the backend returned — never to
// a value guessed locally. A failed call leaves the collection untouched.
//
// Nothing serializes overlapping mutations on the same task: when two are
// in flight, whichever confirmation lands last wins. That matches the
// backend's own merge semantics and is accepted here rather than guarded.
type Coordinator struct {
	store  *Store
	client *remote.Client
	ids    *IDGenerator
	now    func() time.Time
}

type CoordinatorOption func(*Coordinator)

// WithClock pins the coordinator's notion of now, for tests.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) { c.now = now }
}

func WithIDGenerator(g *IDGenerator) CoordinatorOption {
	return func(c *Coordinator) { c.ids = g }
}

func NewCoordinator(store *Store, client *remote.Client, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		store:  store,
		client: client,
		ids:    NewIDGenerator(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) Store() *Store { return c.store }

// Load fetches the persisted collection into the store. On failure the
// collection is left as it was (empty at startup) and the error is reported
// to the caller.
func (c *Coordinator) Load() error {
	c.store.beginOp()
	defer c.store.endOp()
	tasks, err := c.client.List()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	c.store.replaceAll(tasks)
	return nil
}

// SubmitCreate validates the draft, assigns identity, and appends the task
// the backend confirmed. Validation failures never reach the backend.
func (c *Coordinator) SubmitCreate(draft model.Draft) (model.Task, error) {
	d := draft.Normalized()
	if err := d.Validate(model.DateOf(c.now())); err != nil {
		return model.Task{}, err
	}

	task := model.Task{
		ID:          c.ids.Next(),
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Tags:        d.Tags,
		DueDate:     d.DueDate,
		Status:      d.Status,
		CreatedAt:   c.now(),
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	c.store.beginOp()
	defer c.store.endOp()
	created, err := c.client.Create(task)
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	c.store.appendTask(created)
	return created, nil
}

// SubmitUpdate validates the draft and replaces the matching task with the
// merged value the backend returned.
func (c *Coordinator) SubmitUpdate(id string, draft model.Draft) (model.Task, error) {
	d := draft.Normalized()
	if err := d.Validate(model.DateOf(c.now())); err != nil {
		return model.Task{}, err
	}

	c.store.beginOp()
	defer c.store.endOp()
	updated, err := c.client.Update(id, model.PatchFromDraft(d))
	if err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	c.store.replaceTask(updated)
	return updated, nil
}

// SubmitStatusChange flips a single task's status. It doesn't touch the
// loading flag: the list view stays interactive while the change settles,
// and on failure the view re-derives from the unchanged store.
func (c *Coordinator) SubmitStatusChange(id string, status model.Status) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, &model.ValidationError{Field: "status", Reason: "unknown status"}
	}
	updated, err := c.client.Update(id, model.Patch{Status: &status})
	if err != nil {
		return model.Task{}, fmt.Errorf("change status: %w", err)
	}
	c.store.replaceTask(updated)
	return updated, nil
}

// SubmitDelete removes the task once the backend confirms the delete.
// Confirmation with the user happens before this is called.
func (c *Coordinator) SubmitDelete(id string) error {
	c.store.beginOp()
	defer c.store.endOp()
	if err := c.client.Delete(id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	c.store.removeTask(id)
	return nil
}

// ExportJSON renders the current in-memory collection as indented JSON.
func (c *Coordinator) ExportJSON() ([]byte, error) {
	tasks := c.store.Tasks()
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return b, nil
}

// Reset wipes the persisted snapshot and the in-memory collection.
func (c *Coordinator) Reset() error {
	if err := c.client.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	c.store.replaceAll([]model.Task{})
	return nil
}
