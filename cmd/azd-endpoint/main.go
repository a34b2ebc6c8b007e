// Command azd-endpoint parses service endpoint URLs and manages a file of
// named endpoints.
package main

import (
	"os"

	"github.com/jongio/azd-endpoint/cliout"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
