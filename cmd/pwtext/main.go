// Command pwtext prints, queries, converts and serves pwtext configuration files.
package main

import (
	"context"
	"os"

	"github.com/PascalWirtz/pwtext/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
