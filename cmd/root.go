package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dox4/newpost/internal/config"
	"github.com/dox4/newpost/internal/editor"
	"github.com/dox4/newpost/internal/post"
	"github.com/dox4/newpost/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = NewRootCommand(time.Now)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCommand builds the newpost command. now is read once per run to
// stamp the post.
func NewRootCommand(now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newpost [title]",
		Short: "Create a new blog post",
		Long: `Create a new blog post with a front-matter header.

The post is written to _posts/<YYYY-MM-DD>-<title>.markdown, with spaces in
the title replaced by hyphens. If no title is given, it is read from stdin.
An existing post with the same name is overwritten.`,
		Example: `  newpost "Hello World"
  newpost
  newpost --edit "Release notes"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			var title string
			if len(args) == 1 {
				title = args[0]
			} else {
				title, err = ui.PromptTitle(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			g := post.NewGeneratorWithClock(cfg.Dir, cfg.Offset, now)
			path, err := g.Generate(title)
			if err != nil {
				return err
			}

			if cfg.PrintPath {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if cfg.Edit {
				if err := editor.Open(editor.ResolveEditor(cfg.Editor), path); err != nil {
					return err
				}
				checkHeader(cmd.ErrOrStderr(), path)
			}

			return nil
		},
	}

	cmd.Flags().String("dir", post.DefaultDir, "directory the post is written to")
	cmd.Flags().String("offset", post.DefaultOffset, "UTC offset label appended to the post date")
	cmd.Flags().Bool("edit", false, "open the new post in an editor")
	cmd.Flags().String("editor", "", "editor command (default $EDITOR, $VISUAL, vi)")
	cmd.Flags().Bool("print", false, "print the path of the new post")

	// Silence Cobra's built-in error and usage printing so main controls stderr output
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// checkHeader warns when an edited post no longer has readable front-matter.
// It never fails the run.
func checkHeader(w io.Writer, path string) {
	f, err := os.Open(path)
	if err != nil {
		ui.Warn(w, "%v", err)
		return
	}
	defer f.Close()

	if _, err := post.ParseHeader(f); err != nil {
		ui.Warn(w, "%s: %v", path, err)
	}
}
