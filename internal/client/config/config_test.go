package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"app", "-a", "10.0.0.1:6000"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "10.0.0.1:6000", c.ServerEndpointAddr)
}
