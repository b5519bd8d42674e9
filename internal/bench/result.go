package bench

import (
	"fmt"
	"time"
)

// Status classifies the outcome of one model's benchmark task.
type Status int

const (
	// StatusSuccess means the mesh was saved (and rendered, if rendering is on).
	StatusSuccess Status = iota
	// StatusPartial means the mesh was saved but the render stage failed and a
	// placeholder image was written instead.
	StatusPartial
	// StatusFailed means inference or the mesh file write failed; no new mesh
	// exists for this model.
	StatusFailed
)

// String returns the console label for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusPartial:
		return "PARTIAL SUCCESS"
	default:
		return "FAILED"
	}
}

// Result is the outcome of benchmarking a single model. Workers never return
// errors or panic past their boundary; every failure mode ends up here as a
// value so one model cannot take down its siblings.
type Result struct {
	Model      string
	Status     Status
	MeshPath   string        // set when the mesh file was written
	RenderPath string        // set when rendering was attempted
	RenderMsg  string        // render failure detail for PARTIAL SUCCESS
	Elapsed    time.Duration // wall clock from task start to completion
	Err        error         // set for StatusFailed
}

// String formats the single console line for this result.
func (r Result) String() string {
	secs := r.Elapsed.Seconds()
	switch r.Status {
	case StatusSuccess:
		if r.RenderPath != "" {
			return fmt.Sprintf("[%s] SUCCESS: Saved to %s, rendered to %s (took %.2fs)",
				r.Model, r.MeshPath, r.RenderPath, secs)
		}
		return fmt.Sprintf("[%s] SUCCESS: Saved to %s (took %.2fs)", r.Model, r.MeshPath, secs)
	case StatusPartial:
		return fmt.Sprintf("[%s] PARTIAL SUCCESS: Saved to %s, render failed: %s (took %.2fs)",
			r.Model, r.MeshPath, r.RenderMsg, secs)
	default:
		return fmt.Sprintf("[%s] FAILED: %v (after %.2fs)", r.Model, r.Err, secs)
	}
}
