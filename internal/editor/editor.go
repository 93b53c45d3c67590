package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbackEditor is used when neither --editor nor the environment names one.
const fallbackEditor = "vi"

// ResolveEditor picks the command that opens a new post. An explicit
// --editor value wins, then $EDITOR, then $VISUAL.
func ResolveEditor(flagEditor string) string {
	for _, candidate := range []string{flagEditor, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if candidate != "" {
			return candidate
		}
	}
	return fallbackEditor
}

// Open runs editorCmd on path, attached to the current terminal.
func Open(editorCmd, path string) error {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}
