package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-endpoint/browser"
	"github.com/jongio/azd-endpoint/cliout"
	"github.com/jongio/azd-endpoint/endpoints"
	"github.com/jongio/azd-endpoint/fileutil"
	"github.com/jongio/azd-endpoint/logutil"
	"github.com/jongio/azd-endpoint/urlvalue"
)

func newOpenCommand(root *rootOptions) *cobra.Command {
	var (
		target   string
		withPort bool
	)

	cmd := &cobra.Command{
		Use:   "open <name|url>",
		Short: "Open a named endpoint or a URL in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := browser.ParseTarget(target)
			if err != nil {
				return err
			}

			u, err := root.resolve(args[0])
			if err != nil {
				return err
			}

			address, err := browser.Launch(browser.LaunchOptions{URL: u, Target: t, IncludePort: withPort})
			if err != nil {
				return err
			}

			return cliout.Print(map[string]string{"url": address, "target": string(t)}, func() {
				if t == browser.TargetNone {
					cliout.Plain("%s", address)
					return
				}
				cliout.Success("Opened %s", cliout.URL(address))
			})
		},
	}
	cmd.Flags().StringVar(&target, "target", string(browser.TargetDefault), "Browser target ("+browser.FormatValidTargets()+")")
	cmd.Flags().BoolVar(&withPort, "with-port", false, "Include the port in the opened address")
	return cmd
}

// resolve returns the named endpoint when the definitions file has it, and
// otherwise parses arg as a URL.
func (o *rootOptions) resolve(arg string) (*urlvalue.URL, error) {
	file := endpoints.ResolveFile(o.file)
	if !fileutil.FileExists(file) {
		return urlvalue.New(arg), nil
	}

	reg, err := o.loadRegistry(false)
	if err != nil {
		return nil, err
	}
	ep, err := reg.Get(arg)
	if errors.Is(err, endpoints.ErrEndpointNotFound) {
		logutil.Debug("no endpoint with that name, treating as URL", "arg", arg, "file", file)
		return urlvalue.New(arg), nil
	}
	if err != nil {
		return nil, err
	}
	return ep.URL, nil
}
