package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func testClock() time.Time {
	return time.Date(2024, 3, 5, 21, 15, 42, 0, time.Local)
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (t.Chdir requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// setupPostsDir switches into a fresh working directory containing _posts/.
func setupPostsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.Mkdir("_posts", 0755); err != nil {
		t.Fatalf("creating _posts: %v", err)
	}
	return dir
}

func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(testClock)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func readPost(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading post: %v", err)
	}
	return string(data)
}
