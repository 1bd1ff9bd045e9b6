package domain

import "strings"

// TaskFilter is a pure client-side predicate over a fetched task list.
// It never round-trips to the server; filtering is recomputed from the
// last fetched collection on every keystroke or selection.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	Search   string   // Case-insensitive substring over title, description, assignee name
	Status   Status   // Empty = any
	Priority Priority // Empty = any
}

// IsZero returns true if the filter matches everything.
func (f TaskFilter) IsZero() bool {
	return f.Search == "" && f.Status == "" && f.Priority == ""
}

// Match reports whether a single task passes the filter.
func (f TaskFilter) Match(t *Task) bool {
	if t == nil {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.AssignedToName), q) {
			return false
		}
	}
	return true
}

// Apply returns the tasks passing the filter, preserving order.
func (f TaskFilter) Apply(tasks []*Task) []*Task {
	if f.IsZero() {
		return tasks
	}
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result
}
