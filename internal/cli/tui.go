package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Simplici0/ammonia-co2/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive calculator",
		Long:  "Edit the ammonia rate, step the pilot share with the arrow keys and watch the results update.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, _, err := a.calculator(cmd.Context(), dbPath)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(calc),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Load factors from this SQLite catalogue instead of the built-in table")

	return cmd
}
