// Command attest renders consent notices for OSINT education tools and
// gates tool execution behind a consent confirmation.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/osintkit/attest/internal/cli"
	"github.com/osintkit/attest/pkg/version"
)

func main() {
	err := fang.Execute(context.Background(), cli.NewRootCmd(),
		fang.WithVersion(version.GetFullVersion()),
		fang.WithColorSchemeFunc(cli.ColorSchemeFunc),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(1)
	}
}
