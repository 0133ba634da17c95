package main

import (
	"os"

	"staffdesk-cli/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Optional: a missing .env is the normal case.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
