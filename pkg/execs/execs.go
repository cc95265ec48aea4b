// Package execs runs the tool wrapped by the consent gate.
//
// Execution is traced so gated searches can be audited when an OTLP exporter
// is configured.
package execs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/osintkit/attest/pkg/log"
)

var (
	// ErrCommandExecution is returned when the wrapped tool fails.
	ErrCommandExecution = errors.New("run")

	// ErrEmptyCommand is returned when no command was provided.
	ErrEmptyCommand = errors.New("empty command")
)

// Command is the tool invocation guarded by the gate.
type Command struct {
	// Command is the executable to run.
	Command string `json:"command" jsonschema:"title=Command,pattern=^\\S+$"`
	// Args contains the command line arguments.
	Args []string `json:"args,omitempty" jsonschema:"title=Arguments" yaml:"args,flow,omitempty"`
}

// NewCommand creates a [Command] from pre-split arguments.
func NewCommand(args []string) (Command, error) {
	if len(args) == 0 || args[0] == "" {
		return Command{}, ErrEmptyCommand
	}

	return Command{
		Command: args[0],
		Args:    args[1:],
	}, nil
}

// ParseCommand splits a single command string with shell quoting rules.
func ParseCommand(s string) (Command, error) {
	parts, err := shellwords.Parse(s)
	if err != nil {
		return Command{}, fmt.Errorf("parse command: %w", err)
	}

	return NewCommand(parts)
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Command
	}

	return fmt.Sprintf("%s %s", c.Command, strings.Join(c.Args, " "))
}

// Executor runs a [Command] attached to the caller's terminal.
type Executor struct {
	tracer trace.Tracer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cmd    Command
}

func NewExecutor(cmd Command, opts ...ExecutorOpt) Executor {
	e := Executor{
		tracer: otel.Tracer("executor"),
		cmd:    cmd,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

type ExecutorOpt func(*Executor)

// WithStdio redirects the subprocess streams, primarily for tests.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) ExecutorOpt {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// Exec runs the command in dir. The subprocess inherits the configured
// stdio so interactive tools keep working behind the gate.
func (e Executor) Exec(ctx context.Context, dir string) error {
	ctx, span := e.tracer.Start(ctx, "exec", trace.WithAttributes(
		attribute.String("command", e.cmd.String()),
		attribute.String("path", dir),
	))
	defer span.End()

	if e.cmd.Command == "" {
		return ErrEmptyCommand
	}

	logger := log.WithContext(ctx).With(
		slog.String("command", e.cmd.String()),
		slog.String("path", dir),
	)

	start := time.Now()

	//nolint:gosec // G204: The wrapped tool is user-provided on purpose.
	cmd := exec.CommandContext(ctx, e.cmd.Command, e.cmd.Args...)
	cmd.Dir = dir
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err != nil {
		logger.DebugContext(ctx, "command failed",
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)

		return fmt.Errorf("%w: %w", ErrCommandExecution, err)
	}

	logger.DebugContext(ctx, "command executed successfully",
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

func (e Executor) String() string {
	return e.cmd.String()
}
