package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI with a config path inside a temp dir
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "guide.yaml")}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "list")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out, "javascript: react, vue") {
		t.Errorf("Expected javascript frameworks, got:\n%s", out)
	}
	if !strings.Contains(out, "typescript: angular, react, vue") {
		t.Errorf("Expected typescript frameworks, got:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "show", "react", "--ts=false")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out, "// overmind/index.js") {
		t.Errorf("Expected file header, got:\n%s", out)
	}
	if !strings.Contains(out, "createConnect") {
		t.Errorf("Expected react snippet, got:\n%s", out)
	}
}

func TestShowCommandUsesConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "config", "init", "--framework", "angular"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	out, err := run(t, dir, "show")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "OvermindService") {
		t.Errorf("Expected angular typescript snippet from config, got:\n%s", out)
	}
}

func TestShowCommandUnknownFramework(t *testing.T) {
	out, err := run(t, t.TempDir(), "show", "svelte")
	if err != nil {
		t.Fatalf("Unknown framework should not be an error, got %v", err)
	}
	if !strings.Contains(out, "No typescript snippets for framework svelte") {
		t.Errorf("Expected miss message, got:\n%s", out)
	}
}

func TestWriteCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "src")

	out, err := run(t, dir, "write", "vue", "--ts=false", "--out", outDir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "Wrote 1 file(s)") {
		t.Errorf("Expected summary, got:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "overmind", "index.js"))
	if err != nil {
		t.Fatalf("Expected written file: %v", err)
	}
	if !strings.Contains(string(data), "createPlugin") {
		t.Error("Expected vue snippet content")
	}

	if _, err := run(t, dir, "write", "vue", "--ts=false", "--out", outDir); err == nil {
		t.Error("Expected error when files exist without --force")
	}
	if _, err := run(t, dir, "write", "vue", "--ts=false", "--out", outDir, "--force"); err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}
}

func TestWriteCommandMissingEntry(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "write", "angular", "--ts=false", "--out", dir)
	if err == nil {
		t.Fatal("Expected error for javascript angular")
	}
	if !strings.Contains(err.Error(), "available: react, vue") {
		t.Errorf("Expected available frameworks in error, got %v", err)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "config", "init"); err != nil {
		t.Fatalf("First init failed: %v", err)
	}
	if _, err := run(t, dir, "config", "init"); err == nil {
		t.Error("Expected error when config exists")
	}
	if _, err := run(t, dir, "config", "init", "--force", "--language", "javascript"); err != nil {
		t.Errorf("Expected --force to succeed, got %v", err)
	}

	out, err := run(t, dir, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "Language: javascript") {
		t.Errorf("Expected javascript language in summary, got:\n%s", out)
	}
}

func TestConfigInitRejectsBadLanguage(t *testing.T) {
	if _, err := run(t, t.TempDir(), "config", "init", "--language", "coffeescript"); err == nil {
		t.Error("Expected validation error for unknown language")
	}
}

func TestOpenAPICommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "openapi.yaml")

	if _, err := run(t, t.TempDir(), "openapi", "--output", output, "--yaml"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Expected spec file: %v", err)
	}
	if !strings.Contains(string(data), "/api/snippets") {
		t.Error("Expected snippet paths in spec")
	}
}
