package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/finmentor-dev/finmentor/internal/commands"
)

func main() {
	// Best effort: the API key for the advisor may live in a .env file.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
