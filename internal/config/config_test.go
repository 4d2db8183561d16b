package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestGetConfig(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `{
		"LogLevel": "debug",
		"Host": "game.example.com",
		"Port": 8080,
		"MetricsPort": 9090,
		"PollIntervalMs": 5000
	}`)
	conf, err := GetConfig(path)
	require.NoError(t, err)

	assert.Equal("game.example.com", conf.Host)
	assert.Equal(8080, conf.Port)
	assert.Equal(9090, conf.MetricsPort)
	assert.Equal(5*time.Second, conf.PollInterval())

	level, err := conf.GetLogLevel()
	require.NoError(t, err)
	assert.Equal(log.DebugLevel, level)
}

func TestGetConfig_Defaults(t *testing.T) {
	assert := assert.New(t)

	conf, err := GetConfig(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal("localhost", conf.Host)
	assert.Equal(8880, conf.Port)
	assert.Equal(2500*time.Millisecond, conf.PollInterval())

	level, err := conf.GetLogLevel()
	require.NoError(t, err)
	assert.Equal(log.InfoLevel, level)
}

func TestGetConfig_EnvOverridesFile(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("HOST", "game.internal")
	t.Setenv("POLLINTERVALMS", "1000")

	conf, err := GetConfig(writeConfig(t, `{"Host": "localhost", "Port": 8080}`))
	require.NoError(t, err)

	// env wins over the file, including keys the file never set
	assert.Equal("game.internal", conf.Host)
	assert.Equal(time.Second, conf.PollInterval())
	assert.Equal(8080, conf.Port)
}

func TestGetConfig_MissingFile(t *testing.T) {
	assert := assert.New(t)

	conf, err := GetConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(conf)
	assert.Error(err)
}

func TestGetConfig_BadPollInterval(t *testing.T) {
	assert := assert.New(t)

	conf, err := GetConfig(writeConfig(t, `{"PollIntervalMs": -100}`))
	assert.Nil(conf)
	assert.Error(err)
}

func TestGetConfig_BadLogLevel(t *testing.T) {
	assert := assert.New(t)

	conf, err := GetConfig(writeConfig(t, `{"LogLevel": "shouty"}`))
	require.NoError(t, err)

	_, err = conf.GetLogLevel()
	assert.Error(err)
}
