// Package scaffold writes guide snippets into a project directory.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/barisgit/overmind-guide/internal/snippets"
)

// Options controls how snippet files are written
type Options struct {
	Overwrite bool
	Debug     bool
}

// Write creates every file under dir in catalog order and returns the
// written paths
func Write(dir string, files []snippets.File, opts Options) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no snippet files to write")
	}

	// Resolve all targets first so a bad name leaves the directory untouched
	targets := make([]string, len(files))
	for i, file := range files {
		target, err := resolve(dir, file.FileName)
		if err != nil {
			return nil, err
		}
		if !opts.Overwrite {
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("file %s already exists (use --force to overwrite)", target)
			}
		}
		targets[i] = target
	}

	var written []string
	for i, file := range files {
		target := targets[i]

		outputDir := filepath.Dir(target)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return written, fmt.Errorf("failed to create directory %s: %w", outputDir, err)
		}

		if err := os.WriteFile(target, []byte(strings.TrimPrefix(file.Code, "\n")), 0644); err != nil {
			return written, fmt.Errorf("failed to write file %s: %w", target, err)
		}

		if opts.Debug {
			fmt.Printf("📝 Wrote %s\n", target)
		}
		written = append(written, target)
	}

	return written, nil
}

// resolve joins a catalog file name onto dir, rejecting names that leave it
func resolve(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("snippet file name cannot be empty")
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("snippet file name %s must be relative", name)
	}

	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("snippet file name %s escapes the output directory", name)
	}

	return filepath.Join(dir, clean), nil
}
