package model

// Patch describes a partial update merged into a stored task by the backend.
// Nil pointers leave the field untouched; Tags is only applied when non-nil.
// ClearDue removes the due date (a nil DueDate alone means "unchanged").
type Patch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	DueDate     *Date     `json:"dueDate,omitempty"`
	ClearDue    bool      `json:"-"`
	Status      *Status   `json:"status,omitempty"`
}

// Apply merges the patch into a copy of t. ID and CreatedAt are immutable
// and never touched.
func (p Patch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	if p.ClearDue {
		out.DueDate = nil
	} else if p.DueDate != nil {
		d := *p.DueDate
		out.DueDate = &d
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out
}

// PatchFromDraft builds the full-edit patch for a validated draft: every
// editable field is set, so the merge replaces them all.
func PatchFromDraft(d Draft) Patch {
	p := Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Priority:    &d.Priority,
		Tags:        d.Tags,
		Status:      &d.Status,
	}
	if d.Tags == nil {
		p.Tags = []string{}
	}
	if d.DueDate != nil {
		due := *d.DueDate
		p.DueDate = &due
	} else {
		p.ClearDue = true
	}
	return p
}
