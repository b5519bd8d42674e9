package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report is a machine-readable summary of one benchmark run.
type Report struct {
	RunID      string         `json:"run_id"`
	Host       string         `json:"host"`
	Prompt     string         `json:"prompt"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Results    []ResultRecord `json:"results"`
}

// ResultRecord is the JSON form of a single model's outcome.
type ResultRecord struct {
	Model      string  `json:"model"`
	Status     string  `json:"status"`
	MeshPath   string  `json:"mesh_path,omitempty"`
	RenderPath string  `json:"render_path,omitempty"`
	Seconds    float64 `json:"seconds"`
	Error      string  `json:"error,omitempty"`
}

// NewReport starts a report for a run against the given host and prompt.
func NewReport(host, prompt string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Host:      host,
		Prompt:    prompt,
		StartedAt: time.Now().UTC(),
	}
}

// Add records one model's result.
func (rep *Report) Add(res Result) {
	rec := ResultRecord{
		Model:      res.Model,
		Status:     res.Status.String(),
		MeshPath:   res.MeshPath,
		RenderPath: res.RenderPath,
		Seconds:    res.Elapsed.Seconds(),
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	} else if res.RenderMsg != "" {
		rec.Error = res.RenderMsg
	}
	rep.Results = append(rep.Results, rec)
}

// Write finalizes the report and writes it as indented JSON to path.
func (rep *Report) Write(path string) error {
	rep.FinishedAt = time.Now().UTC()
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
