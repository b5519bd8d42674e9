package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/thatcatdev/meshbench/cmd"
)

func main() {
	// A .env file is optional; system environment variables win either way.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
