package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tonyloki/-EcoSense-AI/pkg/runtime/terminal"
)

func main() {
	// Credentials for the insight command may live in a .env file.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
