package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/remote"
	"github.com/gupio/tracker/internal/store/jsonstore"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestCoordinator(t *testing.T, failureRate float64) (*Coordinator, *jsonstore.Store) {
	t.Helper()
	snap := jsonstore.New(afero.NewMemMapFs(), jsonstore.DefaultFileName)
	client := remote.New(snap, remote.WithLatency(remote.Latency{}), remote.WithFailureRate(failureRate))
	c := NewCoordinator(NewStore(), client,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(NewIDGeneratorSeeded(1)),
	)
	return c, snap
}

func TestSubmitCreate_AppendsBackendConfirmedTask(t *testing.T) {
	c, snap := newTestCoordinator(t, 0)

	created, err := c.SubmitCreate(model.Draft{
		Title: "Write design doc",
		Tags:  []string{"Work", "work"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gupio_1", created.ID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, []string{"work"}, created.Tags)
	assert.Equal(t, model.StatusTodo, created.Status)

	// in-memory matches exactly what the backend persisted
	persisted, err := snap.Load()
	require.NoError(t, err)
	assert.Equal(t, persisted, c.Store().Tasks())
}

func TestSubmitCreate_ValidationNeverReachesBackend(t *testing.T) {
	// with p=1 every backend call fails, so a validation error proves the
	// call was never issued
	c, _ := newTestCoordinator(t, 1)

	_, err := c.SubmitCreate(model.Draft{Title: "Hi"})
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)
	assert.Empty(t, c.Store().Tasks())
}

func TestSubmitCreate_PastDueDateRejectedLocally(t *testing.T) {
	c, _ := newTestCoordinator(t, 1)
	past, err := model.ParseDate("2000-01-01")
	require.NoError(t, err)

	_, err = c.SubmitCreate(model.Draft{Title: "His", DueDate: &past})
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "dueDate", verr.Field)
}

func TestSubmitCreate_FailureLeavesCollectionUnchanged(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	_, err := c.SubmitCreate(model.Draft{Title: "Existing task"})
	require.NoError(t, err)
	before := c.Store().Tasks()

	failing := remote.New(
		jsonstoreOf(t, c),
		remote.WithLatency(remote.Latency{}),
		remote.WithFailureRate(1),
	)
	cFail := NewCoordinator(c.store, failing, WithClock(func() time.Time { return testNow }))

	_, err = cFail.SubmitCreate(model.Draft{Title: "Never lands"})
	assert.True(t, errors.Is(err, remote.ErrServer))
	assert.Equal(t, before, c.Store().Tasks())
	assert.False(t, c.Store().Loading())
}

// jsonstoreOf rebuilds a snapshot store holding the coordinator's current
// collection, so a second (failing) client can share the same backend state.
func jsonstoreOf(t *testing.T, c *Coordinator) *jsonstore.Store {
	t.Helper()
	snap := jsonstore.New(afero.NewMemMapFs(), jsonstore.DefaultFileName)
	require.NoError(t, snap.Save(c.Store().Tasks()))
	return snap
}

func TestSubmitUpdate_ReplacesWithBackendValue(t *testing.T) {
	c, snap := newTestCoordinator(t, 0)
	created, err := c.SubmitCreate(model.Draft{Title: "Draft title", Priority: model.PriorityLow})
	require.NoError(t, err)

	updated, err := c.SubmitUpdate(created.ID, model.Draft{
		Title:    "Final title",
		Priority: model.PriorityHigh,
		Status:   model.StatusInProgress,
		Tags:     []string{"sprint"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Final title", updated.Title)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	persisted, err := snap.Load()
	require.NoError(t, err)
	assert.Equal(t, persisted, c.Store().Tasks())
}

func TestSubmitUpdate_NotFoundLeavesCollectionUnchanged(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	_, err := c.SubmitCreate(model.Draft{Title: "Only task"})
	require.NoError(t, err)
	before := c.Store().Tasks()

	_, err = c.SubmitUpdate("gupio_404", model.Draft{Title: "Ghost edit"})
	assert.True(t, errors.Is(err, remote.ErrNotFound))
	assert.Equal(t, before, c.Store().Tasks())
}

func TestSubmitStatusChange_ConfirmThenApply(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	created, err := c.SubmitCreate(model.Draft{Title: "Flip me"})
	require.NoError(t, err)

	updated, err := c.SubmitStatusChange(created.ID, model.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, updated.Status)
	assert.Equal(t, model.StatusDone, c.Store().Tasks()[0].Status)
}

func TestSubmitStatusChange_InvalidStatusRejectedLocally(t *testing.T) {
	c, _ := newTestCoordinator(t, 1)
	_, err := c.SubmitStatusChange("gupio_1", model.Status("paused"))
	var verr *model.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestSubmitStatusChange_FailureKeepsOldStatus(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	created, err := c.SubmitCreate(model.Draft{Title: "Stay todo"})
	require.NoError(t, err)

	cFail := NewCoordinator(c.store, remote.New(
		jsonstoreOf(t, c),
		remote.WithLatency(remote.Latency{}),
		remote.WithFailureRate(1),
	))
	_, err = cFail.SubmitStatusChange(created.ID, model.StatusDone)
	assert.True(t, errors.Is(err, remote.ErrServer))
	assert.Equal(t, model.StatusTodo, c.Store().Tasks()[0].Status)
}

func TestSubmitDelete_RemovesOnConfirmation(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	created, err := c.SubmitCreate(model.Draft{Title: "Short lived"})
	require.NoError(t, err)

	require.NoError(t, c.SubmitDelete(created.ID))
	assert.Empty(t, c.Store().Tasks())
}

func TestSubmitDelete_FailureKeepsTask(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	created, err := c.SubmitCreate(model.Draft{Title: "Survivor"})
	require.NoError(t, err)

	cFail := NewCoordinator(c.store, remote.New(
		jsonstoreOf(t, c),
		remote.WithLatency(remote.Latency{}),
		remote.WithFailureRate(1),
	))
	err = cFail.SubmitDelete(created.ID)
	assert.True(t, errors.Is(err, remote.ErrServer))
	assert.Len(t, c.Store().Tasks(), 1)
}

func TestLoad_PopulatesFromSnapshot(t *testing.T) {
	c, snap := newTestCoordinator(t, 0)
	seed := []model.Task{
		{ID: "gupio_9", Title: "Seeded", Status: model.StatusTodo, Tags: []string{}, CreatedAt: testNow},
	}
	require.NoError(t, snap.Save(seed))

	require.NoError(t, c.Load())
	assert.Equal(t, seed, c.Store().Tasks())
	assert.False(t, c.Store().Loading())
}

func TestLoad_FailureLeavesCollectionEmpty(t *testing.T) {
	c, _ := newTestCoordinator(t, 1)
	err := c.Load()
	assert.True(t, errors.Is(err, remote.ErrServer))
	assert.Empty(t, c.Store().Tasks())
	assert.False(t, c.Store().Loading())
}

func TestLoadingFlag_TrueWhileCallInFlight(t *testing.T) {
	snap := jsonstore.New(afero.NewMemMapFs(), jsonstore.DefaultFileName)
	client := remote.New(snap,
		remote.WithLatency(remote.Latency{List: 50 * time.Millisecond}),
		remote.WithFailureRate(0),
	)
	c := NewCoordinator(NewStore(), client)

	done := make(chan error, 1)
	go func() { done <- c.Load() }()

	deadline := time.After(time.Second)
	for !c.Store().Loading() {
		select {
		case <-deadline:
			t.Fatal("loading flag never went up")
		case <-time.After(time.Millisecond):
		}
	}

	require.NoError(t, <-done)
	assert.False(t, c.Store().Loading())
}

func TestExportJSON_SnapshotsCurrentCollection(t *testing.T) {
	c, _ := newTestCoordinator(t, 0)
	_, err := c.SubmitCreate(model.Draft{Title: "Exported task"})
	require.NoError(t, err)

	b, err := c.ExportJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"Exported task"`)
	assert.Contains(t, string(b), `"gupio_1"`)
}

func TestReset_ClearsPersistedAndInMemory(t *testing.T) {
	c, snap := newTestCoordinator(t, 0)
	_, err := c.SubmitCreate(model.Draft{Title: "Doomed task"})
	require.NoError(t, err)

	require.NoError(t, c.Reset())
	assert.Empty(t, c.Store().Tasks())
	persisted, err := snap.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
