package main

import (
	"fmt"

	"github.com/rpgo/profit-calculator/internal/session"
	"github.com/spf13/cobra"
)

func newInteractiveCmd(a *app) *cobra.Command {
	var noClipboard bool
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Edit amount, percentage and rounding switches line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, svc := a.service(a.runtime.Settings)
			var cb session.Clipboard = session.SystemClipboard{}
			if noClipboard {
				cb = &session.MemoryClipboard{}
			}
			it := &session.Interpreter{
				Screen:    session.NewScreenFromSettings(svc, a.runtime.Settings),
				Clipboard: cb,
				Out:       cmd.OutOrStdout(),
			}
			fmt.Fprintln(cmd.OutOrStdout(), "profit calculator, type help for commands")
			return it.Run(cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "keep copied text in memory instead of the system clipboard")
	return cmd
}
