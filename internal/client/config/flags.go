package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server gRPC address (e.g., "127.0.0.1:50051")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server address and port")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
