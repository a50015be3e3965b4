package model

import "time"

// RunStatus is the lifecycle state of a recorded pipeline run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one recorded execution of the pipeline: the config it ran with,
// its lifecycle status and, once finished, its result summary.
type Run struct {
	ID        string      `json:"id"`
	Config    QueryConfig `json:"config"`
	Status    RunStatus   `json:"status"`
	Result    *RunResult  `json:"result,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RunResult summarizes a finished run.
type RunResult struct {
	PlacesFound int           `json:"places_found"`
	Leads       int           `json:"leads"`
	Stats       PipelineStats `json:"stats"`
	Incomplete  bool          `json:"incomplete"`
	TruncatedBy string        `json:"truncated_by,omitempty"`
	Transient   bool          `json:"transient,omitempty"`
	Elapsed     time.Duration `json:"elapsed"`
	Error       string        `json:"error,omitempty"`
}
