package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once      sync.Once
	envLoaded string
)

// LoadEnv loads environment variables from a .env file in the current or parent
// directory, if one exists. Variables already set in the environment win.
// It reports the file it loaded, or "" when none was found. Only the first call reads.
func LoadEnv() string {
	once.Do(func() {
		envLoaded = loadEnvFrom(".env", filepath.Join("..", ".env"))
	})
	return envLoaded
}

// loadEnvFrom loads the first existing candidate.
func loadEnvFrom(candidates ...string) string {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return ""
		}
		return candidate
	}
	return ""
}
