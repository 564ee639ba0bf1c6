package model

import "strings"

// Draft carries user input for a create or full edit, before it has an
// identity. Validation happens here, at the input boundary, so nothing
// invalid ever reaches the backend.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	Tags        []string
	DueDate     *Date
	Status      Status
}

// Normalized trims free-text fields and canonicalizes tags.
func (d Draft) Normalized() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Tags = NormalizeTags(d.Tags)
	if d.Status == "" {
		d.Status = StatusTodo
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	return d
}

// ValidationError reports a locally rejected field. It is surfaced inline
// next to the offending input, not via the transient error banner.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

// Validate checks a normalized draft against the current calendar day.
func (d Draft) Validate(today Date) error {
	if len(strings.TrimSpace(d.Title)) < 3 {
		return &ValidationError{Field: "title", Reason: "must be at least 3 characters"}
	}
	if len(d.Description) > 200 {
		return &ValidationError{Field: "description", Reason: "exceeds 200 characters"}
	}
	if d.DueDate != nil && d.DueDate.Before(today) {
		return &ValidationError{Field: "dueDate", Reason: "cannot be in the past"}
	}
	if !d.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "unknown priority"}
	}
	if !d.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status"}
	}
	return nil
}

// ParseTags splits a comma separated tag string the way the input form does:
// trimmed, lowercased, empties dropped, duplicates removed keeping the first
// occurrence.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}

// NormalizeTags canonicalizes a tag list in place order: lowercase, trim,
// drop empties, dedupe preserving first occurrence.
func NormalizeTags(raw []string) []string {
	var out []string
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
