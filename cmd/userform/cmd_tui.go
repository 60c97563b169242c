package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-userform/pkg/renderers/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	var noMouse bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the form as an interactive terminal modal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(flags, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			opts := []tea.ProgramOption{
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !noMouse {
				opts = append(opts, tea.WithMouseCellMotion())
			}

			final, err := tea.NewProgram(tui.New(a.reducer), opts...).Run()
			if err != nil {
				a.logger.Error("tui exited", zap.Error(err))
				return fmt.Errorf("userform: tui: %w", err)
			}

			model, ok := final.(tui.Model)
			if !ok {
				return fmt.Errorf("userform: tui: unexpected model %T", final)
			}
			submissions := model.Submissions()
			a.logger.Info("tui closed", zap.Int("submissions", len(submissions)))
			if len(submissions) == 0 {
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), submissions)
		},
	}
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse overlay clicks")
	return cmd
}
