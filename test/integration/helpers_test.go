//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // LHGEN_HOME: user config and logs
	ProjectDir string // a mock Laravel project
}

// setupTestEnv creates a sandboxed home directory and a Laravel project
// with a composer.json mapping App\ to app/ and Domain\ to src/.
func setupTestEnv(t *testing.T, lighthouseVersion string) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("LHGEN_HOME", env.HomeDir)

	writeFile(t, filepath.Join(env.ProjectDir, "composer.json"), `{
    "name": "acme/shop",
    "autoload": {
        "psr-4": {
            "App\\": "app/",
            "Domain\\": ["src/", "lib/"]
        }
    }
}
`)
	if lighthouseVersion != "" {
		writeFile(t, filepath.Join(env.ProjectDir, "composer.lock"), `{
    "packages": [
        {"name": "laravel/framework", "version": "v11.0.0"},
        {"name": "nuwave/lighthouse", "version": "`+lighthouseVersion+`"}
    ]
}
`)
	}

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("expected content to contain %q, got:\n%s", want, content)
	}
}

func assertNotContains(t *testing.T, content, unwanted string) {
	t.Helper()
	if strings.Contains(content, unwanted) {
		t.Errorf("expected content not to contain %q, got:\n%s", unwanted, content)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist", path)
	}
}
