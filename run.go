package docsearch

import (
	"context"
	"time"
)

// Run records the outcome of one crawl run for history and diagnostics.
type Run struct {
	ID         string    `json:"id"`
	DocType    string    `json:"docType"`
	RootURL    string    `json:"rootUrl"`
	Saved      int       `json:"saved"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.DocType == "" {
		return Errorf(EINVALID, "run document type required")
	}
	if r.RootURL == "" {
		return Errorf(EINVALID, "run root URL required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	DocType *string `json:"docType"`

	Limit int `json:"limit"`
}

// RunService records and lists crawl runs.
type RunService interface {
	// CreateRun stores a completed run, assigning its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}
