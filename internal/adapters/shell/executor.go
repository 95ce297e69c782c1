// Package shell runs external tools as subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// Tool output is forwarded to the logger line by line.
type Executor struct {
	logger ports.Logger
	env    func() []string
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		env:    os.Environ,
	}
}

// Execute runs argv in dir and waits for it to exit.
// The process is killed when ctx is cancelled.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from the build plan
	cmd.Dir = dir
	cmd.Env = filterSystemEnv(e.env())

	stdout := &logWriter{logger: e.logger, warn: false}
	stderr := &logWriter{logger: e.logger, warn: true}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stdout.Close()
	_ = stderr.Close()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, "command cancelled"), "command", argv[0])
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failed := zerr.With(zerr.Wrap(domain.ErrToolFailed, err.Error()), "exit_code", exitErr.ExitCode())
		return zerr.With(failed, "command", argv[0])
	}
	return zerr.With(zerr.Wrap(err, "failed to start command"), "command", argv[0])
}

// logWriter splits tool output into lines for the logger.
// stderr lines are warnings: assemblers report diagnostics there without failing.
type logWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	warn   bool
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.warn {
		w.logger.Warn(msg)
		return
	}
	w.logger.Info(msg)
}

// allowListedEnvVars are the system variables passed on to tools.
var allowListedEnvVars = map[string]struct{}{
	"HOME":   {},
	"TERM":   {},
	"USER":   {},
	"PATH":   {},
	"TMPDIR": {},
}

func filterSystemEnv(sysEnv []string) []string {
	env := make([]string, 0, len(allowListedEnvVars))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			env = append(env, entry)
		}
	}
	return env
}
