package main

import (
	"context"
	"fmt"

	"github.com/sandevgo/ragcfg/internal/config"
	"github.com/sandevgo/ragcfg/internal/core"
	"github.com/sandevgo/ragcfg/internal/ragconfig"
	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/sandevgo/ragcfg/internal/service/ui"
	"github.com/sandevgo/ragcfg/pkg/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "ragcfg",
		Short:         "RAG pipeline configuration helper",
		Long:          `ragcfg reads and updates the JSON configuration of the RAG pipeline: models, services, Milvus, generation and retrieval parameters.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, settings, flushLog, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			defer flushLog()

			// the guide needs no document, so it is shown even when loading fails
			guide, err := command.NewGuideCommand(settings).Execute(ctx, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), guide, "\n")

			return flags.load(ctx, cmd, settings, func(ctx context.Context, r *session) (string, error) {
				current, err := r.Execute(ctx, "show", nil)
				if err != nil {
					return "", err
				}
				f := command.NewResponseFormatter()
				return f.Combine(
					current,
					f.Tip("Run `ragcfg examples <name>` to try a different configuration!"),
				), nil
			})
		},
	}

	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to the RAG configuration (default "+ragconfig.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(
		newShowCmd(flags),
		newSetCmd(flags),
		newExamplesCmd(flags),
		newGuideCmd(flags),
		newPickCmd(flags),
		newValidateCmd(flags),
		newInitCmd(flags),
	)

	CustomizeHelp(rootCmd)
	return rootCmd
}

// setup resolves settings and installs the logger. The returned func flushes
// the logger and must be called before returning.
func (f *rootFlags) setup(cmd *cobra.Command) (context.Context, *config.Settings, func(), error) {
	settings, err := config.Load(config.DefaultDotEnvFile, config.Flags{
		ConfigPath: f.configPath,
		Debug:      f.debug,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, flushLog := log.NewContextWithLogger(cmd.Context(), settings.IsDebug(), cmd.ErrOrStderr())
	log.FromCtx(ctx).Debug().
		Str("config", settings.GetConfigPath()).
		Str("notebook", settings.GetNotebook()).
		Msg("settings loaded")

	return ctx, settings, flushLog, nil
}

// session is what a loaded command sees: the router over the configuration
// and the configuration itself.
type session struct {
	*command.Router
	cfg core.RAGConfig
}

// run sets up settings and logging, then hands over to load.
func (f *rootFlags) run(
	cmd *cobra.Command,
	fn func(ctx context.Context, s *session) (string, error),
	opts ...func(*runOptions),
) error {
	ctx, settings, flushLog, err := f.setup(cmd)
	if err != nil {
		return err
	}
	defer flushLog()

	return f.load(ctx, cmd, settings, fn, opts...)
}

// load reads the configuration, builds the command router and prints what fn
// returns. Output is printed even when fn fails so partial reports survive.
func (f *rootFlags) load(
	ctx context.Context,
	cmd *cobra.Command,
	settings *config.Settings,
	fn func(ctx context.Context, s *session) (string, error),
	opts ...func(*runOptions),
) error {
	o := runOptions{format: command.FormatText}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := ragconfig.Load(settings.GetConfigPath())
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Str("path", settings.GetConfigPath()).Msg("failed to load configuration")
		return err
	}

	out, err := fn(ctx, &session{
		Router: command.New(command.NewCommands(store, settings, o.format)),
		cfg:    store,
	})
	if out != "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return err
}

type runOptions struct {
	format command.Format
}

func withFormat(format command.Format) func(*runOptions) {
	return func(o *runOptions) {
		o.format = format
	}
}

// dispatch runs the router command called name with args.
func dispatch(name string, args []string) func(context.Context, *session) (string, error) {
	return func(ctx context.Context, s *session) (string, error) {
		return s.Execute(ctx, name, args)
	}
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
