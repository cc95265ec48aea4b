package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/osintkit/attest/pkg/execs"
	"github.com/osintkit/attest/pkg/ui/consent"
	"github.com/osintkit/attest/pkg/ui/notice"
	"github.com/osintkit/attest/pkg/ui/themes"
)

const gateExamples = `  # Gate an OSINT tool behind a consent confirmation:
  attest gate -- sherlock some-username

  # The wrapped command can also be passed as a string:
  attest gate --run "holehe user@example.com"

  # Skip the prompt, e.g. in classroom scripts that already confirmed:
  attest gate --yes -- sherlock some-username`

type GateArgs struct {
	*RootArgs

	ConfigPath    string
	Run           string
	TraceEndpoint string
	Yes           bool
}

func NewGateArgs(rootArgs *RootArgs) *GateArgs {
	return &GateArgs{
		RootArgs: rootArgs,
	}
}

func (ga *GateArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ga.ConfigPath, "config", "", "Path to the attest configuration file")
	cmd.Flags().StringVar(&ga.Run, "run", "", "Wrapped command as a single string")
	cmd.Flags().StringVar(&ga.TraceEndpoint, "trace-endpoint", "",
		"OTLP gRPC endpoint for trace export")
	cmd.Flags().BoolVarP(&ga.Yes, "yes", "y", false, "Skip the confirmation prompt")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewGateCmd(ga *GateArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gate [-- command ...]",
		Short:   "Show the consent notice and require confirmation before running a tool",
		Example: gateExamples,
		Args: func(cmd *cobra.Command, args []string) error {
			dashPos := cmd.ArgsLenAtDash()
			if dashPos > 0 {
				return fmt.Errorf("accepts no args before --, received %d", dashPos)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return gate(cmd, ga, args)
		},
	}
	ga.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func gate(cmd *cobra.Command, ga *GateArgs, args []string) error {
	execCmd, err := gateCommand(ga, args)
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(ga.ConfigPath, false)
	if err != nil {
		return err
	}

	theme := themes.NewTheme(cfg.UI.Theme)

	// The gate always renders the prominent notice, regardless of the
	// configured variant.
	r := notice.NewRenderer(
		notice.WithTheme(theme),
		notice.WithVariant(notice.VariantProminent),
		notice.WithWidth(terminalWidth()),
	)

	mustN(fmt.Fprintln(cmd.ErrOrStderr(), r.Render()))
	mustN(fmt.Fprintln(cmd.ErrOrStderr()))

	if ga.Yes {
		slog.Warn("skipping consent prompt",
			slog.String("command", execCmd.String()),
		)
	} else {
		err = consent.NewPrompter(theme).Confirm(cmd.Context())
		if err != nil {
			return fmt.Errorf("consent gate: %w", err)
		}
	}

	ctx := cmd.Context()

	if ga.TraceEndpoint != "" {
		shutdown, err := setupTracing(ctx, ga.TraceEndpoint)
		if err != nil {
			return fmt.Errorf("setup tracing: %w", err)
		}

		defer func() {
			err := shutdown(ctx)
			if err != nil {
				slog.Error("shutdown tracing", slog.Any("err", err))
			}
		}()
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	return execs.NewExecutor(execCmd).Exec(ctx, dir) //nolint:wrapcheck // Already descriptive.
}

func gateCommand(ga *GateArgs, args []string) (execs.Command, error) {
	if ga.Run != "" {
		if len(args) > 0 {
			return execs.Command{}, errors.New("use either --run or -- command, not both")
		}

		return execs.ParseCommand(ga.Run) //nolint:wrapcheck // Already descriptive.
	}

	return execs.NewCommand(args) //nolint:wrapcheck // Already descriptive.
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0
	}

	return min(w, notice.DefaultWidth+8)
}
