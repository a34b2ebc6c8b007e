package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-endpoint/cliout"
	"github.com/jongio/azd-endpoint/urlutil"
	"github.com/jongio/azd-endpoint/urlvalue"
)

type parseOptions struct {
	port      portFlag
	insecure  bool
	withPort  bool
	noPrefix  bool
	strict    bool
	httpsOnly bool
}

func newParseCommand() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Split a URL into its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := urlvalue.New(args[0], opts.urlOptions()...)

			switch {
			case opts.httpsOnly:
				if err := urlutil.ValidateHTTPSOnly(u); err != nil {
					return err
				}
			case opts.strict:
				if err := urlutil.Validate(u); err != nil {
					return err
				}
			}

			return cliout.Print(u.Snapshot(), func() {
				printComponents(u, u.URL(opts.withPort, !opts.noPrefix))
			})
		},
	}

	flags := cmd.Flags()
	flags.Var(&opts.port, "port", "Port number (number or numeric string)")
	flags.BoolVar(&opts.insecure, "insecure", false, "Treat a URL without scheme as http")
	flags.BoolVar(&opts.withPort, "with-port", false, "Append the port to the composed URL")
	flags.BoolVar(&opts.noPrefix, "no-prefix", false, "Leave the scheme off the composed URL")
	flags.BoolVar(&opts.strict, "strict", false, "Reject hosts and ports that fail validation")
	flags.BoolVar(&opts.httpsOnly, "https-only", false, "Like --strict, and require https except for localhost")
	return cmd
}

func (o *parseOptions) urlOptions() []urlvalue.Option {
	opts := o.port.options()
	if o.insecure {
		opts = append(opts, urlvalue.WithSecure(false))
	}
	return opts
}

func newHostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "host <url>",
		Short: "Print the host name of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := urlvalue.New(args[0])
			return cliout.Print(map[string]string{"hostName": u.HostName()}, func() {
				cliout.Plain("%s", u.HostName())
			})
		},
	}
}

func printComponents(u *urlvalue.URL, composed string) {
	cliout.Header(u.HostName())
	cliout.Label("Protocol", u.Protocol())
	cliout.Label("Sub-domain", orPlaceholder(u.SubDomain(), u.SubDomain() != ""))
	cliout.Label("Name", orPlaceholder(u.Name()))
	cliout.Label("Domain", orPlaceholder(u.Domain()))
	cliout.Label("Path", orPlaceholder(u.PathString(), len(u.Path()) > 0))
	port, ok := u.Port()
	cliout.Label("Port", orPlaceholder(strconv.Itoa(port), ok))
	cliout.Label("URL", cliout.URL(composed))
}

func orPlaceholder(value string, ok bool) string {
	if !ok {
		return "(none)"
	}
	return value
}
