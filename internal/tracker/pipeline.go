package tracker

import (
	"sort"
	"strings"

	"github.com/gupio/tracker/internal/model"
)

// ApplyFilters is the pure derivation from (tasks, filters) to the ordered,
// filtered sequence the view renders. The input slice is not modified.
//
// Order of operations: substring search, then the three field filters, then
// a stable sort. With no recognized sort key the input order is preserved.
func ApplyFilters(tasks []model.Task, f FilterConfig) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, t := range tasks {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && string(t.Status) != f.Status {
			continue
		}
		if f.Priority != "" && f.Priority != FilterAll && string(t.Priority) != f.Priority {
			continue
		}
		if f.Tag != "" && f.Tag != FilterAll && !hasTag(t, f.Tag) {
			continue
		}
		out = append(out, t)
	}

	switch f.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortDueDate:
		// Ascending; tasks without a due date always sort last.
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := out[i].DueDate, out[j].DueDate
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return di.Before(*dj)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		})
	}
	return out
}

func hasTag(t model.Task, tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
