package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/radiobutton/cmd/radiodemo/internal/config"
	"github.com/go-drift/radiobutton/internal/hostlist"
	"github.com/go-drift/radiobutton/internal/logger"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Pick a host from an animated radio list",
		Long: `Show a list of hosts, each with a radio control. Selecting a row
animates the previous selection out and the new one in. Every fourth row
uses a white-on-dark palette.

Keys: up/k, down/j, enter/space to select, q/esc to quit.

Logs go to --log-file while the list owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings.Radio()
			if err != nil {
				return err
			}

			log := a.log
			if a.settings.LogFile == "" {
				log = logger.Noop()
			}
			label, err := hostlist.Run(hostlist.Options{
				Rows:   a.settings.Rows,
				Radio:  cfg,
				Logger: log,
			}, cmd.OutOrStdout(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			if label != "" {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
	cmd.Flags().Int(config.KeyRows, hostlist.DefaultRows, "number of rows")
	return cmd
}
