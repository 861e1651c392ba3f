package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"lsdir": func() int {
			return run(sandboxDir, os.Stdout, os.Stderr)
		},
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Condition: func(cond string) (bool, error) {
			if cond != "sandbox" {
				return false, fmt.Errorf("unknown condition %q", cond)
			}
			_, err := os.Stat(sandboxDir)
			return err == nil, nil
		},
	})
}

func TestRunPrintsOneNumberedLinePerEntry(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	status := run(dir, stdout, stderr)
	if status != 0 {
		t.Fatalf("want status 0, got %d (stderr %q)", status, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("want no stderr output, got %q", stderr.String())
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), stdout.String())
	}
	// The counter must match each line's ordinal position; the names may
	// come back in any order.
	names := []string{}
	for i, line := range lines {
		prefix := fmt.Sprintf("File %3d: ", i+1)
		if !strings.HasPrefix(line, prefix) {
			t.Fatalf("want line %d to start with %q, got %q", i+1, prefix, line)
		}
		names = append(names, strings.TrimPrefix(line, prefix))
	}
	sort.Strings(names)
	want := []string{"a.txt", "b.txt"}
	if !cmp.Equal(want, names) {
		t.Error(cmp.Diff(want, names))
	}
}

func TestRunSucceedsSilentlyOnEmptyDirectory(t *testing.T) {
	t.Parallel()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	status := run(t.TempDir(), stdout, stderr)
	if status != 0 {
		t.Fatalf("want status 0, got %d (stderr %q)", status, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("want no stdout output, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("want no stderr output, got %q", stderr.String())
	}
}

func TestRunReportsUnopenableDirectoryOnStderr(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		dir  func(t *testing.T) string
	}{
		{"nonexistent path", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "doesntexist")
		}},
		{"not a directory", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "file.txt")
			if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
				t.Fatal(err)
			}
			return path
		}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			status := run(tc.dir(t), stdout, stderr)
			if status != 1 {
				t.Errorf("want status 1, got %d", status)
			}
			if stdout.Len() != 0 {
				t.Errorf("want no stdout output, got %q", stdout.String())
			}
			if !strings.Contains(stderr.String(), "unable to read directory") {
				t.Errorf("want diagnostic on stderr, got %q", stderr.String())
			}
		})
	}
}
