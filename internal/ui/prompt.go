package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dox4/newpost/internal/post"
)

// TitlePrompt is printed when no title argument is given.
const TitlePrompt = "please input a title for your new post:"

// PromptTitle writes the prompt to out, unstyled even on a terminal, and
// reads one line from in. The line ending is stripped; an empty line yields
// an empty title.
func PromptTitle(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprintln(out, TitlePrompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading title: %w", err)
		}
		if line == "" {
			return "", post.ErrNoTitle
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
