package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath is available before any config is parsed, so the .env file
// inside the runtime directory can be loaded first.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("TUSKMEM_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".tuskmem"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
