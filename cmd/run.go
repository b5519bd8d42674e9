package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thatcatdev/meshbench/internal/bench"
	"github.com/thatcatdev/meshbench/internal/config"
	"github.com/thatcatdev/meshbench/internal/ollama"
	"github.com/thatcatdev/meshbench/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark against every configured model",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()

		if path, _ := cmd.Flags().GetString("config"); path != "" {
			if err := config.LoadFile(path, cfg); err != nil {
				return err
			}
		}

		if models, _ := cmd.Flags().GetStringSlice("models"); len(models) > 0 {
			cfg.Models = models
		}
		if prompt, _ := cmd.Flags().GetString("prompt"); prompt != "" {
			cfg.Prompt = prompt
		}
		if promptFile, _ := cmd.Flags().GetString("prompt-file"); promptFile != "" {
			data, err := os.ReadFile(promptFile)
			if err != nil {
				return fmt.Errorf("failed to read prompt file: %w", err)
			}
			cfg.Prompt = string(data)
		}
		if host, _ := cmd.Flags().GetString("host"); host != "" {
			cfg.Host = host
		}
		if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
			cfg.OutputDir = dir
		}
		if dir, _ := cmd.Flags().GetString("render-dir"); dir != "" {
			cfg.RenderDir = dir
		}
		if doRender, _ := cmd.Flags().GetBool("render"); doRender {
			cfg.Render = true
		}
		if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
			cfg.Workers = workers
		}
		if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
			cfg.Timeout = timeout.String()
		}
		if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
			cfg.FileTag = tag
		}
		summaryPath, _ := cmd.Flags().GetString("summary")

		timeout, err := cfg.RequestTimeout()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := ollama.NewClient(cfg.Host, timeout)
		runner := bench.NewRunner(cfg, client)
		if cfg.Render {
			runner.Render = render.Render
		}

		fmt.Printf("--- Benchmarking %d models against %s (%d workers) ---\n",
			len(cfg.Models), cfg.Host, cfg.PoolSize())

		results, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		report := bench.NewReport(cfg.Host, cfg.Prompt)
		var succeeded, partial, failed int
		for res := range results {
			fmt.Println(res.String())
			report.Add(res)
			switch res.Status {
			case bench.StatusSuccess:
				succeeded++
			case bench.StatusPartial:
				partial++
			default:
				failed++
			}
		}

		fmt.Printf("\n--- All tests completed: %d succeeded, %d partial, %d failed ---\n",
			succeeded, partial, failed)

		if summaryPath != "" {
			if err := report.Write(summaryPath); err != nil {
				return err
			}
			fmt.Printf("Summary written to %s\n", summaryPath)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringSlice("models", nil, "models to benchmark (default: built-in registry)")
	runCmd.Flags().String("prompt", "", "scene prompt to send to every model")
	runCmd.Flags().String("prompt-file", "", "read the scene prompt from a file")
	runCmd.Flags().String("host", "", "Ollama base URL (default http://localhost:11434, or OLLAMA_HOST)")
	runCmd.Flags().String("output-dir", "", "directory for generated .obj files")
	runCmd.Flags().String("render-dir", "", "directory for rendered .png previews")
	runCmd.Flags().Bool("render", false, "render each saved mesh to a PNG preview")
	runCmd.Flags().Int("workers", 0, "worker pool size (0 = NumCPU+4, capped at 32)")
	runCmd.Flags().Duration("timeout", 0, "per-request timeout (0 = none)")
	runCmd.Flags().String("tag", "", "date tag appended to output filenames")
	runCmd.Flags().String("config", "", "YAML config file")
	runCmd.Flags().String("summary", "", "write a JSON run summary to this path")
	rootCmd.AddCommand(runCmd)
}
