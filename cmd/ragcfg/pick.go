package main

import (
	"context"
	"errors"

	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/sandevgo/ragcfg/internal/service/picker"
	"github.com/spf13/cobra"
)

func newPickCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a model interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (string, error) {
				agent, err := s.cfg.AgentModelPath()
				if err != nil {
					return "", err
				}
				reranker, err := s.cfg.RerankerModelPath()
				if err != nil {
					return "", err
				}

				state, err := picker.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), picker.NewPickState(map[command.Role]string{
					command.RoleAgent:    agent,
					command.RoleReranker: reranker,
				}))
				if errors.Is(err, picker.ErrCancelled) {
					return "Model selection cancelled.\n", nil
				}
				if err != nil {
					return "", err
				}

				return s.Execute(ctx, "set", []string{string(state.Role), state.Model})
			})
		},
	}
}
