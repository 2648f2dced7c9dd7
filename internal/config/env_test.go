package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv unsets key for the duration of the test so a .env file can supply it
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadEnvironment_Defaults(t *testing.T) {
	clearEnv(t, EnvAssumptions)
	clearEnv(t, EnvFormat)
	clearEnv(t, EnvDebug)

	env := LoadEnvironment(writeFile(t, "empty.env", ""))

	assert.Equal(t, "", env.AssumptionsFile)
	assert.Equal(t, "table", env.Format)
	assert.False(t, env.Debug)
}

func TestLoadEnvironment_FromDotEnv(t *testing.T) {
	clearEnv(t, EnvAssumptions)
	clearEnv(t, EnvFormat)
	clearEnv(t, EnvDebug)

	path := writeFile(t, ".env", "RETIRECALC_ASSUMPTIONS=/etc/retirecalc/2026.yaml\nRETIRECALC_FORMAT=json\nRETIRECALC_DEBUG=true\n")
	env := LoadEnvironment(path)

	assert.Equal(t, "/etc/retirecalc/2026.yaml", env.AssumptionsFile)
	assert.Equal(t, "json", env.Format)
	assert.True(t, env.Debug)
}

func TestLoadEnvironment_ProcessEnvWins(t *testing.T) {
	clearEnv(t, EnvDebug)
	clearEnv(t, EnvAssumptions)
	t.Setenv(EnvFormat, "csv")

	env := LoadEnvironment(writeFile(t, ".env", "RETIRECALC_FORMAT=json\n"))
	assert.Equal(t, "csv", env.Format)
}

func TestLoadEnvironment_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t, EnvFormat)
	t.Setenv(EnvDebug, "not-a-bool")

	env := LoadEnvironment("/nonexistent/.env")
	assert.Equal(t, "table", env.Format)
	assert.False(t, env.Debug)
}
