package remote

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/store/jsonstore"
)

func newTestClient(t *testing.T, rate float64) (*Client, *jsonstore.Store) {
	t.Helper()
	store := jsonstore.New(afero.NewMemMapFs(), jsonstore.DefaultFileName)
	c := New(store, WithLatency(Latency{}), WithFailureRate(rate))
	return c, store
}

func TestCreateListUpdateDelete(t *testing.T) {
	c, _ := newTestClient(t, 0)

	created, err := c.Create(model.Task{ID: "gupio_1", Title: "First", Status: model.StatusTodo})
	require.NoError(t, err)
	assert.Equal(t, "gupio_1", created.ID)

	tasks, err := c.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	st := model.StatusDone
	updated, err := c.Update("gupio_1", model.Patch{Status: &st})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, updated.Status)
	assert.Equal(t, "First", updated.Title)

	require.NoError(t, c.Delete("gupio_1"))
	tasks, err = c.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdate_MissingIDIsNotFound(t *testing.T) {
	c, _ := newTestClient(t, 0)
	_, err := c.Update("gupio_missing", model.Patch{})
	assert.True(t, errors.Is(err, ErrNotFound), "want ErrNotFound, got %v", err)
}

func TestInjectedFailure_LeavesCollectionUntouched(t *testing.T) {
	c, store := newTestClient(t, 0)
	_, err := c.Create(model.Task{ID: "gupio_1", Title: "Keep me"})
	require.NoError(t, err)
	before, err := store.Load()
	require.NoError(t, err)

	failing := New(store, WithLatency(Latency{}), WithFailureRate(1))

	_, err = failing.Create(model.Task{ID: "gupio_2"})
	assert.True(t, errors.Is(err, ErrServer))
	st := model.StatusDone
	_, err = failing.Update("gupio_1", model.Patch{Status: &st})
	assert.True(t, errors.Is(err, ErrServer))
	err = failing.Delete("gupio_1")
	assert.True(t, errors.Is(err, ErrServer))
	_, err = failing.List()
	assert.True(t, errors.Is(err, ErrServer))

	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDelete_MissingIDIsNoError(t *testing.T) {
	c, _ := newTestClient(t, 0)
	_, err := c.Create(model.Task{ID: "gupio_1"})
	require.NoError(t, err)
	require.NoError(t, c.Delete("gupio_404"))

	tasks, err := c.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestReset_WipesEverything(t *testing.T) {
	c, _ := newTestClient(t, 0)
	_, err := c.Create(model.Task{ID: "gupio_1"})
	require.NoError(t, err)

	require.NoError(t, c.Reset())
	tasks, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
