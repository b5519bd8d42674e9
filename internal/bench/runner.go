package bench

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/thatcatdev/meshbench/internal/config"
)

// ChatClient sends a prompt to a model and returns its textual reply.
// This abstraction decouples the runner from the HTTP client; tests pass a
// fake, the CLI passes an ollama.Client.
type ChatClient interface {
	Chat(ctx context.Context, model, prompt string) (string, error)
}

// RenderFunc renders a saved mesh file to an image at outPath. It must always
// leave a file at outPath (a real render or an error placeholder) and report
// failure through the returned flag and message, never an error.
type RenderFunc func(meshPath, outPath string) (bool, string)

// Runner fans the benchmark prompt out to every configured model through a
// bounded worker pool.
type Runner struct {
	cfg    *config.Config
	client ChatClient

	// Render is invoked after a successful mesh write when set. Nil disables
	// the render stage.
	Render RenderFunc
}

// NewRunner creates a Runner over the given configuration and client.
func NewRunner(cfg *config.Config, client ChatClient) *Runner {
	return &Runner{cfg: cfg, client: client}
}

// Run submits one task per configured model and returns a channel delivering
// results in completion order. The channel is closed once every task has
// resolved; there is no global abort, and a failing model never prevents the
// others from completing.
func (r *Runner) Run(ctx context.Context) (<-chan Result, error) {
	if err := r.cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create output directories: %w", err)
	}

	results := make(chan Result)
	sem := make(chan struct{}, r.cfg.PoolSize())
	var wg sync.WaitGroup

	for _, model := range r.cfg.Models {
		wg.Add(1)
		go func(model string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- r.runOne(ctx, model)
		}(model)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

// runOne benchmarks a single model: prompt, save, optionally render. Every
// failure is converted into the returned Result, including panics from
// anywhere below this frame.
func (r *Runner) runOne(ctx context.Context, model string) (res Result) {
	start := time.Now()
	res = Result{Model: model}

	defer func() {
		res.Elapsed = time.Since(start)
		if rec := recover(); rec != nil {
			res = Result{
				Model:   model,
				Status:  StatusFailed,
				Err:     fmt.Errorf("unexpected error during execution: %v", rec),
				Elapsed: time.Since(start),
			}
		}
	}()

	content, err := r.client.Chat(ctx, model, r.cfg.Prompt)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	meshPath := r.cfg.MeshPath(model)
	if err := os.WriteFile(meshPath, []byte(content), 0644); err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("write mesh file: %w", err)
		return res
	}
	res.MeshPath = meshPath

	if r.Render != nil {
		renderPath := r.cfg.RenderPath(model)
		res.RenderPath = renderPath
		if ok, msg := r.Render(meshPath, renderPath); !ok {
			res.Status = StatusPartial
			res.RenderMsg = msg
			return res
		}
	}

	res.Status = StatusSuccess
	return res
}
