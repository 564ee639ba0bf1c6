package remote

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/store/jsonstore"
)

// Simulated remote task API over the snapshot store. Every call sleeps a
// per-operation latency and then fails with probability FailureRate before
// touching the collection, mimicking an unreliable backend. Both knobs are
// configuration so tests can pin them.

var (
	// ErrServer is the injected generic backend failure.
	ErrServer = errors.New("server error: failed to process request")

	// ErrNotFound reports an update against an id the backend doesn't hold.
	ErrNotFound = errors.New("task not found")
)

// Latency holds the artificial per-operation delays.
type Latency struct {
	List   time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		List:   500 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 400 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

// DefaultFailureRate is the probability any single call fails.
const DefaultFailureRate = 0.1

type Client struct {
	store       *jsonstore.Store
	latency     Latency
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Client)

func WithLatency(l Latency) Option {
	return func(c *Client) { c.latency = l }
}

func WithFailureRate(p float64) Option {
	return func(c *Client) { c.failureRate = p }
}

// WithRand swaps the randomness source, for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(c *Client) { c.rng = r }
}

func New(store *jsonstore.Store, opts ...Option) *Client {
	c := &Client{
		store:       store,
		latency:     DefaultLatency(),
		failureRate: DefaultFailureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns the persisted collection.
func (c *Client) List() ([]model.Task, error) {
	if err := c.simulate(c.latency.List); err != nil {
		return nil, err
	}
	return c.store.Load()
}

// Create appends the task to the collection and persists the whole snapshot.
func (c *Client) Create(task model.Task) (model.Task, error) {
	if err := c.simulate(c.latency.Create); err != nil {
		return model.Task{}, err
	}
	tasks, err := c.store.Load()
	if err != nil {
		return model.Task{}, err
	}
	tasks = append(tasks, task)
	if err := c.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Update merges the patch into the stored task and persists the updated
// collection. Returns ErrNotFound when no task has the given id.
func (c *Client) Update(id string, patch model.Patch) (model.Task, error) {
	if err := c.simulate(c.latency.Update); err != nil {
		return model.Task{}, err
	}
	tasks, err := c.store.Load()
	if err != nil {
		return model.Task{}, err
	}
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		merged := patch.Apply(t)
		tasks[i] = merged
		if err := c.store.Save(tasks); err != nil {
			return model.Task{}, err
		}
		return merged, nil
	}
	return model.Task{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
}

// Delete removes the task with the given id. Deleting an id the backend
// doesn't hold is not an error, matching the filter semantics of the store.
func (c *Client) Delete(id string) error {
	if err := c.simulate(c.latency.Delete); err != nil {
		return err
	}
	tasks, err := c.store.Load()
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return c.store.Save(kept)
}

// Reset wipes the persisted collection. It is an administrative escape
// hatch, so no latency or failure is injected.
func (c *Client) Reset() error {
	return c.store.Clear()
}

func (c *Client) simulate(d time.Duration) error {
	if d > 0 {
		time.Sleep(d)
	}
	c.mu.Lock()
	roll := c.rng.Float64()
	c.mu.Unlock()
	if roll < c.failureRate {
		return ErrServer
	}
	return nil
}
