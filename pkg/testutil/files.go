package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to a named file inside a temp dir and returns its path.
//
// The file is created with 0644 permissions and removed automatically when
// the test finishes (the directory comes from t.TempDir).
//
// Parameters:
//   - t: Testing instance for helper marking and fatal errors
//   - name: File name within the temp dir
//   - content: File content
//
// Returns:
//   - string: Absolute path of the written file
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// WriteGroupConfig writes a standard two-group configuration file and returns its path.
//
// The fixture declares group-a (dummy-pkg-* minus dummy-pkg-b) and group-b
// (dummy-pkg-b and dummy-pkg-c), matching the canonical grouping scenario
// used across the test suites.
//
// Parameters:
//   - t: Testing instance for helper marking
//
// Returns:
//   - string: Absolute path of the written config file
func WriteGroupConfig(t *testing.T) string {
	t.Helper()

	return WriteFile(t, ".depgroups.yml", `
groups:
  group-a:
    patterns:
      - "dummy-pkg-*"
    exclude-patterns:
      - "dummy-pkg-b"
  group-b:
    patterns:
      - "dummy-pkg-b"
      - "dummy-pkg-c"
`)
}

// WriteDependencyList writes a JSON dependency list file and returns its path.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - names: Dependency names to include, in order
//
// Returns:
//   - string: Absolute path of the written dependency file
func WriteDependencyList(t *testing.T, names ...string) string {
	t.Helper()

	content := "["
	for i, name := range names {
		if i > 0 {
			content += ", "
		}
		content += `"` + name + `"`
	}
	content += "]"

	return WriteFile(t, "deps.json", content)
}
