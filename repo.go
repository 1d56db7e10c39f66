package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const localesDir = "locales"

// surveyRoot returns the survey project root by walking up from the current
// directory looking for package.json.
func surveyRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find survey project root (no package.json found)")
		}
		dir = parent
	}
}

// localesPath returns the locales directory under the project root.
func localesPath(root string) string {
	return filepath.Join(root, localesDir)
}
