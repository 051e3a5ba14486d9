// Command fmcli is the fault-management CLI display client.
package main

import (
	"os"

	"github.com/faultmgr/fmcli/internal/cli"
)

// version is stamped at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // build-time metadata

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
