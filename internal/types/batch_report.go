package types

import "time"

// Status is the processing state of a single record
type Status string

const (
	StatusPending   Status = "pending"
	StatusParsed    Status = "parsed"
	StatusRendered  Status = "rendered"
	StatusCompiling Status = "compiling"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Terminal reports whether no further transitions are possible
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// FileResult is the outcome of processing one record
type FileResult struct {
	File       string        `json:"file"`
	Status     Status        `json:"status"`
	OutputPath string        `json:"output_path,omitempty"`
	Stage      string        `json:"stage,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

// BatchReport aggregates the results of one batch run
type BatchReport struct {
	RunID      string       `json:"run_id"`
	InputDir   string       `json:"input_dir"`
	OutputDir  string       `json:"output_dir"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Results    []FileResult `json:"results"`
}

// Succeeded returns the number of records that produced a PDF
func (r *BatchReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusSucceeded {
			n++
		}
	}
	return n
}

// Failed returns the number of records that did not produce a PDF
func (r *BatchReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}
