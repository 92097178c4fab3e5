package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textsearch/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Search interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the TUI; logs go to a file or nowhere.
			a.logger = log.New(io.Discard, "", 0)
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "textsearch")
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				a.logger = log.Default()
			}
			svc := a.service()
			m := tui.New(cmd.Context(), svc, svc.Index(cmd.Context()))
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the TUI runs")
	return cmd
}
