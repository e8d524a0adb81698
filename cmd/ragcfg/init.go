package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/ragcfg/internal/config"
	"github.com/sandevgo/ragcfg/internal/ragconfig"
	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/sandevgo/ragcfg/pkg/log"
	"github.com/spf13/cobra"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	var force, saveEnv bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, settings, flushLog, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			defer flushLog()

			path := settings.GetConfigPath()
			store, err := ragconfig.WriteStarter(path, force)
			if errors.Is(err, ragconfig.ErrAlreadyExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return err
			}

			log.FromCtx(ctx).Info().Str("path", store.Path()).Msg("starter configuration written")

			f := command.NewResponseFormatter()
			sections := []string{f.Success("Starter configuration written to " + store.Path())}

			if saveEnv {
				if err := config.SaveDotEnv(config.DefaultDotEnvFile, &config.Settings{ConfigPath: store.Path()}); err != nil {
					return err
				}
				log.FromCtx(ctx).Debug().Str("file", config.DefaultDotEnvFile).Msg("config path saved")
				sections = append(sections, f.Success("Saved RAGCFG_CONFIG_PATH to "+config.DefaultDotEnvFile))
			}

			sections = append(sections, f.Tip("Run `ragcfg show` to review it."))
			fmt.Fprint(cmd.OutOrStdout(), f.Combine(sections...))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration")
	cmd.Flags().BoolVar(&saveEnv, "save-env", false, "remember the config path in "+config.DefaultDotEnvFile)
	return cmd
}
