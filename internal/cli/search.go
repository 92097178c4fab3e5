package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Print the first matching lines for a literal query",
		Long: `Print the first matching lines for a literal query.

An empty query ("") matches every line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := a.service().Search(cmd.Context(), args[0])
			out := cmd.OutOrStdout()
			seqColor := color.New(color.FgCyan, color.Bold)
			if !isTerminal(out) {
				seqColor.DisableColor()
			}
			for _, line := range page.Results {
				if prefix, rest, ok := splitSeq(line); ok {
					fmt.Fprintf(out, "%s%s\n", seqColor.Sprint(prefix), rest)
					continue
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "Folder size: %s\n", page.FolderSize)
			return nil
		},
	}
}

// splitSeq splits "[n] rest" into "[n]" and " rest".
func splitSeq(line string) (string, string, bool) {
	if !strings.HasPrefix(line, "[") {
		return "", line, false
	}
	end := strings.IndexByte(line, ']')
	if end < 2 {
		return "", line, false
	}
	for _, r := range line[1:end] {
		if r < '0' || r > '9' {
			return "", line, false
		}
	}
	return line[:end+1], line[end+1:], true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
