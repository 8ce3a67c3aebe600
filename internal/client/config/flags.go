package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tasknotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API root URL
//	-d string   local database path
//	-s string   handshake mode (http or stub)
//	-t int      handshake timeout in seconds
//	-l string   log level
//
// Only these flags are looked at (see flagx.FilterArgs), so the -c flag
// handled by parseJson does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "API root URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.HandshakeMode, "s", cfg.HandshakeMode, "handshake mode: http or stub")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	handshakeTimeout := fs.Int("t", int(cfg.HandshakeTimeout.Seconds()), "handshake timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HandshakeTimeout = time.Duration(*handshakeTimeout) * time.Second
}
