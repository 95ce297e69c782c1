package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/cmd/rodata/commands"
	"go.trai.ch/rodata/internal/app"
	"go.trai.ch/rodata/internal/build"
)

type mockApp struct {
	logFormat string
	verbose   bool

	buildFunc    func(ctx context.Context, targets []string, opts app.BuildOptions) error
	describeFunc func(ctx context.Context, w io.Writer, targets []string) error
	watchFunc    func(ctx context.Context, opts app.WatchOptions) error
	cleanCalled  bool
}

func (m *mockApp) ConfigureLogging(formatFlag string, verbose bool) {
	m.logFormat = formatFlag
	m.verbose = verbose
}

func (m *mockApp) Build(ctx context.Context, targets []string, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, targets, opts)
	}
	return nil
}

func (m *mockApp) Describe(ctx context.Context, w io.Writer, targets []string) error {
	if m.describeFunc != nil {
		return m.describeFunc(ctx, w, targets)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleanCalled = true
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		var capturedTargets []string

		mock := &mockApp{
			buildFunc: func(_ context.Context, targets []string, opts app.BuildOptions) error {
				capturedOpts = opts
				capturedTargets = targets
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "assets/logo.bin", "--no-cache", "-j", "3", "--log-format", "json", "-v"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, 3, capturedOpts.Jobs)
		assert.Equal(t, []string{"assets/logo.bin"}, capturedTargets)
		assert.Equal(t, "json", mock.logFormat)
		assert.True(t, mock.verbose)
	})

	t.Run("builds everything without targets", func(t *testing.T) {
		called := false
		mock := &mockApp{
			buildFunc: func(_ context.Context, targets []string, _ app.BuildOptions) error {
				called = true
				assert.Empty(t, targets)
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, "auto", mock.logFormat)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ []string, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Describe(t *testing.T) {
	t.Run("writes to stdout", func(t *testing.T) {
		mock := &mockApp{
			describeFunc: func(_ context.Context, w io.Writer, targets []string) error {
				assert.Equal(t, []string{"assets/logo.bin"}, targets)
				_, err := io.WriteString(w, "step: assets:$S/assets/logo.bin\n")
				return err
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"describe", "assets/logo.bin"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "step: assets:$S/assets/logo.bin\n", out.String())
	})

	t.Run("requires a target", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"describe"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "-j", "2", "--debounce", "250ms"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, 2, captured.Jobs)
	assert.Equal(t, 250*time.Millisecond, captured.Debounce)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.cleanCalled)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_VerboseShorthand(t *testing.T) {
	t.Run("before the subcommand", func(t *testing.T) {
		called := false
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ []string, _ app.BuildOptions) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-v", "build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.True(t, mock.verbose)
	})

	t.Run("version flag keeps its long form", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"--version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "rodata version "+build.Version)
	})
}
