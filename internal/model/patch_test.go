package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatchApply_PartialLeavesRestAlone(t *testing.T) {
	created := time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC)
	due := Date{Year: 2026, Month: 9, Day: 1}
	task := Task{
		ID:        "gupio_1",
		Title:     "Ship release",
		Priority:  PriorityHigh,
		Tags:      []string{"release"},
		DueDate:   &due,
		Status:    StatusTodo,
		CreatedAt: created,
	}

	st := StatusDone
	got := Patch{Status: &st}.Apply(task)

	assert.Equal(t, StatusDone, got.Status)
	assert.Equal(t, "Ship release", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, &due, got.DueDate)
	assert.Equal(t, "gupio_1", got.ID)
	assert.Equal(t, created, got.CreatedAt)
}

func TestPatchApply_DoesNotAliasTags(t *testing.T) {
	task := Task{ID: "gupio_2", Tags: []string{"a"}}
	got := Patch{Tags: []string{"b", "c"}}.Apply(task)
	got.Tags[0] = "mutated"
	assert.Equal(t, []string{"a"}, task.Tags)
}

func TestPatchFromDraft_ClearsDueWhenAbsent(t *testing.T) {
	p := PatchFromDraft(Draft{Title: "Tidy", Status: StatusTodo, Priority: PriorityLow})
	assert.True(t, p.ClearDue)
	assert.Nil(t, p.DueDate)

	due := Date{Year: 2027, Month: 1, Day: 2}
	task := Task{ID: "gupio_3", DueDate: &due}
	assert.Nil(t, p.Apply(task).DueDate)
}
