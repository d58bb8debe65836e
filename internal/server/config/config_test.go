package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.GroupProfile, "rfc5114")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.ChallengeTTL, 2*time.Minute)
	assert.Equal(t, c.SessionReapInterval, 30*time.Second)
	assert.Equal(t, c.SessionTokenValidityDuration, 15*time.Minute)
	assert.False(t, c.AllowReRegistration)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.GroupProfile, "rfc5114")
	assert.Equal(t, c.ChallengeTTL, 2*time.Minute)
}
