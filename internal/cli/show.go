package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/osintkit/attest/pkg/config"
	"github.com/osintkit/attest/pkg/log"
	"github.com/osintkit/attest/pkg/ui"
	"github.com/osintkit/attest/pkg/ui/notice"
	"github.com/osintkit/attest/pkg/ui/themes"
)

const cmdExamples = `  # Preview the configured consent notice:
  attest

  # Preview a specific variant:
  attest show prominent

  # Reload the preview when the config file changes:
  attest show --watch

  # Send output to a file (disables TUI):
  attest show prominent > notice.txt

  # Require consent confirmation before running a tool:
  attest gate -- holehe user@example.com`

type ShowArgs struct {
	*RootArgs

	Variant     string
	ConfigPath  string
	Width       int
	Watch       bool
	WriteConfig bool
	ShowConfig  bool
}

func NewShowArgs(rootArgs *RootArgs) *ShowArgs {
	return &ShowArgs{
		RootArgs: rootArgs,
	}
}

func (sa *ShowArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sa.ConfigPath, "config", "", "Path to the attest configuration file")
	cmd.Flags().IntVar(&sa.Width, "width", 0, "Render width for non-interactive output")
	cmd.Flags().BoolVarP(&sa.Watch, "watch", "w", false, "Watch the config file and reload the preview")
	cmd.Flags().BoolVar(&sa.WriteConfig, "write-config", false, "Write the default configuration files and exit")
	cmd.Flags().BoolVar(&sa.ShowConfig, "show-config", false, "Print the active configuration and exit")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewShowCmd(sa *ShowArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show [variant]",
		Short:             "Render the consent notice, interactively on a terminal",
		Example:           cmdExamples,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: showCompletion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				sa.Variant = args[0]
			}

			return show(cmd, sa)
		},
	}
	sa.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func showCompletion() func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []cobra.Completion{
				string(notice.VariantDefault),
				string(notice.VariantProminent),
			}, cobra.ShellCompDirectiveNoFileComp
		}

		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func show(cmd *cobra.Command, sa *ShowArgs) error {
	cfg, configPath, err := loadConfig(sa.ConfigPath, sa.WriteConfig)
	if err != nil || sa.WriteConfig {
		return err
	}

	if sa.Variant != "" {
		v, err := notice.ParseVariant(sa.Variant)
		if err != nil {
			return fmt.Errorf("parse variant: %w", err)
		}

		cfg.Notice.Variant = v
	}

	if sa.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		yamlBytes, err := cfg.MarshalYAML()
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		mustN(fmt.Fprintln(cmd.OutOrStdout(), string(yamlBytes)))

		return nil
	}

	// If stdout is not a terminal, write the notice and exit.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		r := notice.NewRenderer(
			notice.WithTheme(themes.NewTheme(cfg.UI.Theme)),
			notice.WithConfig(cfg.Notice),
			notice.WithWidth(sa.Width),
		)

		mustN(fmt.Fprintln(cmd.OutOrStdout(), r.Render()))

		return nil
	}

	logBuf := log.NewCircularBuffer(100)
	logHandler, err := log.CreateHandlerWithStrings(logBuf, sa.LogLevel, sa.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	err = runUI(cmd.Context(), cfg, configPath, sa.Watch)
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

// loadConfig ensures defaults exist on disk, then loads and validates the
// configuration. With writeOnly set it returns after writing the defaults.
func loadConfig(configPath string, writeOnly bool) (*config.Config, string, error) {
	cfg := config.NewConfig()

	if configPath == "" {
		configPath = config.GetPath()
	}

	err := config.WriteDefaultConfig(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}
	if writeOnly {
		// Exit early after writing the default config.
		// Also, if there was an error, it should be fatal.
		return nil, configPath, err
	}

	cl, err := config.NewConfigLoaderFromFile(configPath)
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))

		return cfg, configPath, nil
	}

	err = cl.Validate()
	if err != nil {
		return nil, configPath, fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	cfg, err = cl.Load()
	if err != nil {
		return nil, configPath, fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	return cfg, configPath, nil
}

// fileSource reloads the notice configuration from a file on demand.
type fileSource struct {
	path string
}

func (fs *fileSource) Path() string {
	return fs.path
}

func (fs *fileSource) Reload() (*notice.Config, error) {
	cl, err := config.NewConfigLoaderFromFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	err = cl.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg.Notice, nil
}

// runUI starts the UI program, optionally reloading on config file changes.
func runUI(ctx context.Context, cfg *config.Config, configPath string, watch bool) error {
	src := &fileSource{path: configPath}
	p := ui.NewProgram(cfg.UI, cfg.Notice, src)

	if watch {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		defer func() {
			err := w.Close()
			if err != nil {
				slog.Error("close watcher", slog.Any("err", err))
			}
		}()

		go w.Watch(watchCtx, func() {
			cfg, err := src.Reload()
			if err != nil {
				p.Send(ui.ErrMsg{Err: err})

				return
			}

			p.Send(ui.ConfigReloadedMsg{Notice: cfg})
		})
	}

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
