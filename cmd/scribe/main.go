package main

import (
	"fmt"
	"os"

	"groq-scribe/cmd/scribe/cmd"
	"groq-scribe/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}
	cmd.Execute()
}
