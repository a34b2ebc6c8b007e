package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-endpoint/cliout"
	"github.com/jongio/azd-endpoint/endpoints"
	"github.com/jongio/azd-endpoint/logutil"
	"github.com/jongio/azd-endpoint/version"
)

type rootOptions struct {
	output  string
	file    string
	debug   bool
	noColor bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "azd-endpoint",
		Short:         "Parse and compose service endpoint URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliout.SetFormat(opts.output); err != nil {
				return err
			}
			if opts.noColor {
				cliout.NoColor()
			}
			logutil.SetupLogger(opts.debug || os.Getenv(logutil.EnvDebug) == "true", cliout.IsJSON())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	flags.StringVarP(&opts.file, "file", "f", "", "Endpoint definitions file (default $"+endpoints.EnvFile+" or "+endpoints.DefaultFile+")")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newParseCommand(),
		newHostCommand(),
		newListCommand(opts),
		newShowCommand(opts),
		newOpenCommand(opts),
		version.NewCommand(version.New("azd-endpoint")),
	)
	return cmd
}

func (o *rootOptions) loadRegistry(strict bool) (*endpoints.Registry, error) {
	return endpoints.Load(endpoints.ResolveFile(o.file), endpoints.LoadOptions{Strict: strict})
}
