package model

// TaskStatus represents the status of a conversion task
type TaskStatus string

const (
	// TaskStatusPending means the request was accepted but work has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusConverting means decode, resize or encode is in progress
	TaskStatusConverting TaskStatus = "Converting"

	// TaskStatusCompleted means the output file was written
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the conversion failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true while the task is being converted
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusConverting
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
