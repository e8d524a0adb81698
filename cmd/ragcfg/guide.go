package main

import (
	"fmt"

	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/spf13/cobra"
)

// The guide does not need a configuration document, so it skips loading one.
func newGuideCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Quick start guide for changing models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, settings, flushLog, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			defer flushLog()

			out, err := command.NewGuideCommand(settings).Execute(ctx, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
