package main

import (
	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/spf13/cobra"
)

func newExamplesCmd(flags *rootFlags) *cobra.Command {
	names := make([]string, 0)
	for _, ex := range command.Examples() {
		names = append(names, ex.Name)
	}

	return &cobra.Command{
		Use:       "examples [name]",
		Short:     "List or apply the example model switches",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, dispatch("examples", args))
		},
	}
}
