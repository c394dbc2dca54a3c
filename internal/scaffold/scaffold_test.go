package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barisgit/overmind-guide/internal/snippets"
)

func TestWriteTypeScriptReact(t *testing.T) {
	dir := t.TempDir()
	files := snippets.Select(true, snippets.React)

	written, err := Write(dir, files, Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(written) != 2 {
		t.Fatalf("Expected 2 written files, got %d", len(written))
	}
	if written[0] != filepath.Join(dir, "overmind", "state.ts") {
		t.Errorf("Expected state.ts first, got %s", written[0])
	}
	if written[1] != filepath.Join(dir, "overmind", "index.ts") {
		t.Errorf("Expected index.ts second, got %s", written[1])
	}

	content, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if !strings.HasPrefix(string(content), "export type Post") {
		t.Errorf("Expected leading newline to be trimmed, got %q", string(content)[:20])
	}
}

func TestWriteRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	files := snippets.Select(false, snippets.Vue)

	if _, err := Write(dir, files, Options{}); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	if _, err := Write(dir, files, Options{}); err == nil {
		t.Error("Expected error when file already exists")
	}

	if _, err := Write(dir, files, Options{Overwrite: true}); err != nil {
		t.Errorf("Expected overwrite to succeed, got %v", err)
	}
}

func TestWriteRejectsEscapingNames(t *testing.T) {
	tests := []string{"../outside.js", "/etc/passwd", "a/../../b.js", ""}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := Write(dir, []snippets.File{{FileName: name, Code: "x"}}, Options{})
			if err == nil {
				t.Errorf("Expected error for file name %q", name)
			}
		})
	}
}

func TestWriteNoFiles(t *testing.T) {
	if _, err := Write(t.TempDir(), snippets.Select(false, "svelte"), Options{}); err == nil {
		t.Error("Expected error for empty snippet set")
	}
}

func TestWriteBadNameLeavesDirectoryUntouched(t *testing.T) {
	dir := t.TempDir()
	files := []snippets.File{
		{FileName: "overmind/index.js", Code: "ok"},
		{FileName: "../escape.js", Code: "bad"},
	}

	if _, err := Write(dir, files, Options{}); err == nil {
		t.Fatal("Expected error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory, found %d entries", len(entries))
	}
}
