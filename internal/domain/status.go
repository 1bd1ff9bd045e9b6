package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not picked up yet
	StatusInProgress Status = "in_progress" // Being worked on
	StatusReview     Status = "review"      // Work done, awaiting review
	StatusCompleted  Status = "completed"   // Accepted, terminal
)

// AllStatuses returns all valid status values in progression order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusReview, StatusCompleted}
}

// progression is the fixed linear advance order. Lateral moves are still
// possible through explicit status selection; Next only drives the
// "advance" action.
var progression = map[Status]Status{
	StatusPending:    StatusInProgress,
	StatusInProgress: StatusReview,
	StatusReview:     StatusCompleted,
}

// Next returns the successor in the fixed progression.
// Completed has no successor.
func (s Status) Next() (Status, bool) {
	next, ok := progression[s]
	return next, ok
}

// IsTerminal returns true if the status has no successor.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReview, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Priority is a display and sorting hint with no workflow effect.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AllPriorities returns all valid priority values from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Rank returns the sort weight of the priority (higher is more urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return -1
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	default:
		return string(p)
	}
}
