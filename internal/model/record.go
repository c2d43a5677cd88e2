package model

import "time"

// Record is one accepted search result. A record is created at most once per
// unique profile URL during a run and is immutable after acceptance.
type Record struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
	Keyword    string `json:"keyword"`
	Category   string `json:"category"`
	Target     string `json:"target,omitempty"`
}

// RunStatus tracks the lifecycle of a collection run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is a persisted collection run.
type Run struct {
	ID          string     `json:"id"`
	Provider    string     `json:"provider"`
	Destination string     `json:"destination"`
	Status      RunStatus  `json:"status"`
	Result      *RunResult `json:"result,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RunResult summarizes a completed run.
type RunResult struct {
	Total       int            `json:"total"`
	PerCategory map[string]int `json:"per_category,omitempty"`
}
