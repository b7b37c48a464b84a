package main

import (
	"github.com/spf13/cobra"

	"github.com/fibrecore/fibre/pkg/render/termhost"
)

func termCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the demo app in the terminal",
		Long: `Start the termhost demo.

Mounts the counter demo onto a termhost Platform and drives it with a
bubbletea program: Tab cycles focus between buttons, Enter activates
the focused one, q or Ctrl+C quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return termhost.Run(counterApp())
		},
	}

	return cmd
}
