package domain

import "time"

// OperationStatus represents the lifecycle state of a recorded operation.
type OperationStatus string

const (
	// OperationStarted indicates the operation is in flight.
	OperationStarted OperationStatus = "started"
	// OperationCompleted indicates the operation finished without error.
	OperationCompleted OperationStatus = "completed"
	// OperationFailed indicates the operation finished with an error.
	OperationFailed OperationStatus = "failed"
)

// IsTerminal reports whether the status is final.
func (s OperationStatus) IsTerminal() bool {
	return s == OperationCompleted || s == OperationFailed
}

// OperationMetric records one timed operation. Fields move forward once: started, then completed or failed.
type OperationMetric struct {
	ID       string
	Name     string
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Status   OperationStatus
	Error    string
}

// OperationStats summarizes the finished metrics of one operation name.
type OperationStats struct {
	Name        string
	Count       int
	AvgDuration time.Duration
	MinDuration time.Duration
	MaxDuration time.Duration
	// SuccessRate is the percentage of completed metrics, 0 to 100.
	SuccessRate float64
}
