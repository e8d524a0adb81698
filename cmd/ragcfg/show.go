package main

import (
	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/spf13/cobra"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "View the current RAG configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := command.ParseFormat(output)
			if err != nil {
				return err
			}
			return flags.run(cmd, dispatch("show", nil), withFormat(format))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(command.FormatText), "output format: text, json or yaml")
	return cmd
}
