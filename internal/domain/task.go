package domain

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Details   string       `json:"details,omitempty"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	DueDate   time.Time    `json:"dueDate"`
	CreatedAt time.Time    `json:"createdAt"`
	OrgID     int64        `json:"orgId"`
}

// NewTask carries the fields accepted on creation. ID and CreatedAt are
// server-assigned.
type NewTask struct {
	Title    string
	Details  string
	Status   TaskStatus
	Priority TaskPriority
	DueDate  time.Time
	OrgID    int64
}

// TaskPatch is a partial update. Nil fields are left unchanged; the owning
// organization and creation timestamp are immutable and not represented here.
type TaskPatch struct {
	Title    *string
	Details  *string
	Status   *TaskStatus
	Priority *TaskPriority
	DueDate  *time.Time
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Details == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil
}
