package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatcatdev/meshbench/internal/config"
	"github.com/thatcatdev/meshbench/internal/ollama"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the Ollama host",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if host, _ := cmd.Flags().GetString("host"); host != "" {
			cfg.Host = host
		}

		client := ollama.NewClient(cfg.Host, 0)
		models, err := client.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list models (is Ollama running at %s?): %w", cfg.Host, err)
		}

		if len(models) == 0 {
			fmt.Println("No models available. Pull one with 'ollama pull <model>'.")
			return nil
		}

		for _, m := range models {
			fmt.Printf("%-40s %10s  %s\n", m.Name, formatSize(m.Size), m.ModifiedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func formatSize(bytes int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func init() {
	modelsCmd.Flags().String("host", "", "Ollama base URL")
	rootCmd.AddCommand(modelsCmd)
}
