package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-endpoint/cliout"
	"github.com/jongio/azd-endpoint/endpoints"
)

func newListCommand(root *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List endpoints from the definitions file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := root.loadRegistry(strict)
			if err != nil {
				return err
			}

			all := reg.ListAll()
			return cliout.Print(all, func() {
				if len(all) == 0 {
					cliout.Info("No endpoints defined")
					return
				}
				rows := make([]cliout.TableRow, 0, len(all))
				for _, ep := range all {
					rows = append(rows, endpointRow(ep))
				}
				cliout.Table([]string{"Name", "Protocol", "Host", "Port", "URL"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject endpoints that fail validation")
	return cmd
}

func newShowCommand(root *rootOptions) *cobra.Command {
	var withPort bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one endpoint from the definitions file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := root.loadRegistry(false)
			if err != nil {
				return err
			}
			ep, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			return cliout.Print(ep, func() {
				printComponents(ep.URL, ep.URL.URL(withPort, true))
			})
		},
	}
	cmd.Flags().BoolVar(&withPort, "with-port", false, "Append the port to the composed URL")
	return cmd
}

func endpointRow(ep endpoints.Endpoint) cliout.TableRow {
	port := ""
	if p, ok := ep.URL.Port(); ok {
		port = strconv.Itoa(p)
	}
	return cliout.TableRow{
		"Name":     ep.Name,
		"Protocol": ep.URL.Protocol(),
		"Host":     ep.URL.HostName(),
		"Port":     port,
		"URL":      ep.URL.String(),
	}
}
