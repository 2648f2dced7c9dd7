package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the command-line tools
const (
	EnvAssumptions = "RETIRECALC_ASSUMPTIONS"
	EnvFormat      = "RETIRECALC_FORMAT"
	EnvDebug       = "RETIRECALC_DEBUG"
)

// Environment holds per-environment defaults for the command-line tools
type Environment struct {
	AssumptionsFile string
	Format          string
	Debug           bool
}

// LoadEnvironment reads defaults from the process environment after loading any .env
// files. Variables already set in the environment take precedence over the files, and
// a missing .env file is not an error.
func LoadEnvironment(envFiles ...string) Environment {
	_ = godotenv.Load(envFiles...)

	return Environment{
		AssumptionsFile: getEnv(EnvAssumptions, ""),
		Format:          getEnv(EnvFormat, "table"),
		Debug:           getEnvBool(EnvDebug, false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
