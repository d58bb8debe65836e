package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
	"github.com/dmitrijs2005/zkauth/internal/timex"
)

// JsonConfig is the DTO used for reading JSON configuration files.
// Interval fields use timex.Duration so files can contain either
// strings such as "30s" or integer nanoseconds. After unmarshalling,
// values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	GroupProfile                 string         `json:"group_profile"`
	SecretKey                    string         `json:"secret_key"`
	ChallengeTTL                 timex.Duration `json:"challenge_ttl"`
	SessionReapInterval          timex.Duration `json:"session_reap_interval"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	AllowReRegistration          bool           `json:"allow_re_registration"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags, if any. Missing flag means nothing
// is loaded; an unreadable or invalid file panics, since the process
// cannot come up with a half-applied configuration.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.GroupProfile = c.GroupProfile
	config.SecretKey = c.SecretKey
	config.ChallengeTTL = c.ChallengeTTL.Duration
	config.SessionReapInterval = c.SessionReapInterval.Duration
	config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	config.AllowReRegistration = c.AllowReRegistration
}
