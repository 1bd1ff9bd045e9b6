package domain

import "time"

// Task is the client's projection of a server-owned task record.
// The server is the source of truth; the client never patches its copy
// in place but refetches the collection after every mutation.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	AssignedToName string     `json:"assignedToName,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty"`
	CreatedByName  string     `json:"createdByName,omitempty"`
	CreatedAt      time.Time  `json:"createdAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt,omitempty"`
}

// IsOverdue reports whether the task's deadline has passed without the
// task being completed. Derived on demand, never stored.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil || t.Status == StatusCompleted {
		return false
	}
	return t.Deadline.Before(now)
}

// CanAdvance returns true if a successor exists in the fixed progression.
func (t *Task) CanAdvance() bool {
	_, ok := t.Status.Next()
	return ok
}
