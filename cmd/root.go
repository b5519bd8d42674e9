package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meshbench",
	Short: "Benchmark local Ollama models on a text-to-3D prompt",
	Long: "meshbench sends every configured local model the same text-to-3D-scene prompt,\n" +
		"saves each raw reply as an OBJ mesh file, and can render each mesh to a PNG preview.",
}

func Execute() error {
	return rootCmd.Execute()
}
