package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/alexisbeaulieu97/vitrine/internal/logger"
)

func main() {
	// Local overrides only; existing environment variables win.
	_ = godotenv.Load()

	log, err := logger.New(logger.Options{
		Level:    os.Getenv("VITRINE_LOG_LEVEL"),
		FilePath: logFilePath(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logFilePath picks where log output goes. The viewer owns the
// terminal while it runs, so logs always go to a rotated file.
func logFilePath() string {
	if p := os.Getenv("VITRINE_LOG_FILE"); p != "" {
		return p
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "vitrine.log"
	}
	return filepath.Join(dir, "vitrine", "vitrine.log")
}
