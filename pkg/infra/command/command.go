package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultTimeout = 30 * time.Minute

	// waitDelay bounds how long Run waits for output pipes after the process is killed.
	waitDelay = 10 * time.Second

	outputTailSize = 4096
	redacted       = "***"
)

// Command is one external program invocation. Secrets are removed from anything
// logged or attached to errors.
type Command struct {
	Path    string
	Args    []string
	Dir     string
	Env     []string
	Secrets []string
}

func (x *Command) redact(s string) string {
	for _, secret := range x.Secrets {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, redacted)
		}
	}
	return s
}

func (x *Command) String() string {
	return x.redact(strings.Join(append([]string{x.Path}, x.Args...), " "))
}

// Executor runs a Command and returns its merged stdout and stderr.
type Executor interface {
	Execute(ctx context.Context, cmd *Command) ([]byte, error)
}

type Runner struct {
	timeout time.Duration
}

var _ Executor = (*Runner)(nil)

type Option func(*Runner)

// WithTimeout sets the per-command deadline. The process group is killed when it expires.
func WithTimeout(d time.Duration) Option {
	return func(x *Runner) {
		if d > 0 {
			x.timeout = d
		}
	}
}

func New(options ...Option) *Runner {
	x := &Runner{timeout: DefaultTimeout}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Runner) Execute(ctx context.Context, cmd *Command) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	c.WaitDelay = waitDelay

	// Children such as git-remote-https or forked JVMs share the group and die with it.
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		return syscall.Kill(-c.Process.Pid, syscall.SIGKILL)
	}

	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = &out

	logger := logging.From(ctx).With(slog.String("command", cmd.String()), slog.String("dir", cmd.Dir))
	logger.Debug("Running command")

	started := time.Now()
	err := c.Run()
	elapsed := time.Since(started)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out.Bytes(), goerr.Wrap(types.ErrExternalTool, "command timed out",
			goerr.V("command", cmd.String()),
			goerr.V("timeout", x.timeout.String()),
			goerr.V("output", cmd.redact(tail(out.String()))),
		)
	}

	if err != nil {
		exitCode := -1
		if c.ProcessState != nil {
			exitCode = c.ProcessState.ExitCode()
		}
		logger.Warn("Command failed", slog.Int("exit_code", exitCode), slog.Duration("elapsed", elapsed))
		return out.Bytes(), goerr.Wrap(fmt.Errorf("%w: %s", types.ErrExternalTool, cmd.redact(err.Error())), "command failed",
			goerr.V("command", cmd.String()),
			goerr.V("exit_code", exitCode),
			goerr.V("output", cmd.redact(tail(out.String()))),
		)
	}

	logger.Debug("Command finished", slog.Duration("elapsed", elapsed))
	return out.Bytes(), nil
}

func tail(s string) string {
	if len(s) <= outputTailSize {
		return s
	}
	return s[len(s)-outputTailSize:]
}
