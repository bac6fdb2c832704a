package config

import (
	"flag"
	"os"
	"time"

	"github.com/prepwyse/prepwyse/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   DSN of the local database (default from Config)
//	-l int      simulated backend latency in milliseconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "DSN of the local database")
	latencyMs := fs.Int("l", int(cfg.BackendLatency.Milliseconds()), "simulated backend latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.BackendLatency = time.Duration(*latencyMs) * time.Millisecond
}
