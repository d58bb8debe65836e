// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the zkauth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - GroupProfile: parameter-set profile, "toy" or "rfc5114".
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not
//     use test defaults in prod.
//   - ChallengeTTL: how long an unanswered challenge stays valid.
//   - SessionReapInterval: how often expired challenges are collected.
//   - SessionTokenValidityDuration: lifetime of issued session tokens.
//   - AllowReRegistration: when true, Register replaces an existing
//     registration instead of failing.
type Config struct {
	EndpointAddrGRPC             string
	GroupProfile                 string
	SecretKey                    string
	ChallengeTTL                 time.Duration
	SessionReapInterval          time.Duration
	SessionTokenValidityDuration time.Duration
	AllowReRegistration          bool
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.GroupProfile = "rfc5114"
	c.SecretKey = "secretKey"
	c.ChallengeTTL = 2 * time.Minute
	c.SessionReapInterval = 30 * time.Second
	c.SessionTokenValidityDuration = 15 * time.Minute
	c.AllowReRegistration = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
