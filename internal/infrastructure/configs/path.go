package configs

import (
	"os"

	"github.com/hilthontt/pipeline-demo/internal/infrastructure/env"
)

// DetermineConfigPath returns the config file to load, or "" when the
// process should run on defaults and environment variables alone.
func DetermineConfigPath() string {
	if configPath := env.GetString("PIPELINE_DEMO_CONFIG", ""); configPath != "" {
		return configPath
	}

	candidates := []string{
		"./config.yaml",
		"./config.yml",
		"/etc/pipeline-demo/config.yaml",
		"/app/config.yaml", // common in Docker
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
