package main

import (
	"github.com/spf13/cobra"
)

func newSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set [agent|reranker] [model]",
		Short: "Show or change the agent or reranker model",
		Example: `  ragcfg set agent Qwen/Qwen2.5-1.5B-Instruct
  ragcfg set reranker BAAI/bge-reranker-base`,
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: []string{"agent", "reranker"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, dispatch("set", args))
		},
	}
}
