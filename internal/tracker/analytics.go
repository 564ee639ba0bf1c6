package tracker

import (
	"sort"

	"github.com/gupio/tracker/internal/model"
)

// Summary is the analytics view derived from the full, unfiltered
// collection.
type Summary struct {
	Total      int
	Todo       int
	InProgress int
	Done       int
	Overdue    int

	TagFreq map[string]int
	// TopTag is the most frequent tag; ties go to the tag encountered first
	// while scanning tasks in collection order. Empty when no tags exist.
	TopTag string
	// Tags is the distinct tag set, sorted lexicographically, for the tag
	// filter selector (the "all" pseudo-option is the selector's concern).
	Tags []string
}

// Summarize derives the analytics summary. Pure: recomputed on every call.
// Overdue counts tasks due strictly before today whose status isn't done.
func Summarize(tasks []model.Task, today model.Date) Summary {
	s := Summary{
		Total:   len(tasks),
		TagFreq: make(map[string]int),
	}

	var firstSeen []string
	for _, t := range tasks {
		switch t.Status {
		case model.StatusTodo:
			s.Todo++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusDone:
			s.Done++
		}
		if t.DueDate != nil && t.DueDate.Before(today) && t.Status != model.StatusDone {
			s.Overdue++
		}
		for _, tag := range t.Tags {
			if _, ok := s.TagFreq[tag]; !ok {
				firstSeen = append(firstSeen, tag)
			}
			s.TagFreq[tag]++
		}
	}

	best := 0
	for _, tag := range firstSeen {
		if s.TagFreq[tag] > best {
			best = s.TagFreq[tag]
			s.TopTag = tag
		}
	}

	if len(firstSeen) > 0 {
		s.Tags = append([]string(nil), firstSeen...)
		sort.Strings(s.Tags)
	}
	return s
}
