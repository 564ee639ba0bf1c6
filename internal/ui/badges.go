package ui

import "github.com/gupio/tracker/internal/model"

// StatusBox renders the checkbox glyph for a task status.
func StatusBox(s model.Status) string {
	t := Current()
	switch s {
	case model.StatusDone:
		return t.Success.Render(t.BoxDone)
	case model.StatusInProgress:
		return t.Pending.Render(t.BoxInProgress)
	}
	return t.Muted.Render(t.BoxTodo)
}

// PriorityBadge renders the priority label in its theme color.
func PriorityBadge(p model.Priority) string {
	t := Current()
	switch p {
	case model.PriorityHigh:
		return t.High.Render(string(p))
	case model.PriorityLow:
		return t.Low.Render(string(p))
	}
	return t.Medium.Render(string(model.PriorityMedium))
}
