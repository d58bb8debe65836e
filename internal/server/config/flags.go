package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-g string   group profile ("toy" or "rfc5114")
//	-s string   session token HMAC secret key
//	-t int      challenge TTL, seconds
//	-i int      session reap interval, seconds
//	-v int      session token validity, minutes
//	-r bool     allow re-registration (overwrite policy)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-t", "-i", "-v", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.GroupProfile, "g", config.GroupProfile, "group parameter profile")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	challengeTTL := fs.Int("t", int(config.ChallengeTTL.Seconds()), "challenge_ttl (in seconds)")
	reapInterval := fs.Int("i", int(config.SessionReapInterval.Seconds()), "session_reap_interval (in seconds)")
	tokenValidity := fs.Int("v", int(config.SessionTokenValidityDuration.Minutes()), "session_token_validity_duration (in minutes)")

	fs.BoolVar(&config.AllowReRegistration, "r", config.AllowReRegistration, "allow re-registration")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
	config.SessionReapInterval = time.Duration(*reapInterval) * time.Second
	config.SessionTokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
