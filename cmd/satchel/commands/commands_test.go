package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/satchel/cmd/satchel/commands"
	"go.trai.ch/satchel/internal/app"
	"go.trai.ch/satchel/internal/build"
	"go.trai.ch/satchel/internal/core/domain"
)

type mockApp struct {
	configureFunc func(opts app.OutputOptions)
	enumerateFunc func(ctx context.Context, opts app.EnumerateOptions) error
	movesFunc     func(ctx context.Context, text string) error
	watchFunc     func(ctx context.Context, opts app.EnumerateOptions) error
}

func (m *mockApp) ConfigureOutput(opts app.OutputOptions) {
	if m.configureFunc != nil {
		m.configureFunc(opts)
	}
}

func (m *mockApp) Enumerate(ctx context.Context, opts app.EnumerateOptions) error {
	if m.enumerateFunc != nil {
		return m.enumerateFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Moves(ctx context.Context, text string) error {
	if m.movesFunc != nil {
		return m.movesFunc(ctx, text)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.EnumerateOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Enumerate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.EnumerateOptions
		called := false

		mock := &mockApp{
			enumerateFunc: func(_ context.Context, opts app.EnumerateOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"enumerate", "100",
			"--order", "asc",
			"-f", "json",
			"-p", "4",
			"-c", "custom.yaml",
			"--progress",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.EnumerateOptions{
			ConfigPath:  "custom.yaml",
			Amount:      100,
			Order:       "asc",
			Format:      "json",
			Parallelism: 4,
			Progress:    true,
		}, captured)
	})

	t.Run("amount is optional", func(t *testing.T) {
		var captured app.EnumerateOptions
		mock := &mockApp{
			enumerateFunc: func(_ context.Context, opts app.EnumerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"enum"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 0, captured.Amount)
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		mock := &mockApp{
			enumerateFunc: func(_ context.Context, _ app.EnumerateOptions) error {
				panic("should not be called")
			},
		}

		for _, arg := range []string{"ten", "-5", "0"} {
			cli := commands.New(mock)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
			cli.SetArgs([]string{"enumerate", "--", arg})

			err := cli.Execute(context.Background())
			require.ErrorIs(t, err, domain.ErrInvalidAmount, "arg %q", arg)
		}
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"enumerate", "10", "25"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error on enumerate failure", func(t *testing.T) {
		mock := &mockApp{
			enumerateFunc: func(_ context.Context, _ app.EnumerateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"enumerate", "25"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Moves(t *testing.T) {
	t.Run("joins arguments into one satchel", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			movesFunc: func(_ context.Context, text string) error {
				captured = text
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"moves", "50p", "5n", "2d", "1q"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "50p 5n 2d 1q", captured)
	})

	t.Run("requires a satchel", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"moves"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured app.EnumerateOptions
	called := false
	mock := &mockApp{
		enumerateFunc: func(_ context.Context, _ app.EnumerateOptions) error {
			panic("should not be called")
		},
		watchFunc: func(_ context.Context, opts app.EnumerateOptions) error {
			captured = opts
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "50", "-f", "yaml", "--config", "coins.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, app.EnumerateOptions{ConfigPath: "coins.yaml", Amount: 50, Format: "yaml"}, captured)

	cli = commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"watch", "fifty"})
	require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrInvalidAmount)
}

func TestCommands_OutputFlags(t *testing.T) {
	var captured app.OutputOptions
	mock := &mockApp{
		configureFunc: func(opts app.OutputOptions) {
			captured = opts
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"enumerate", "5", "-v", "--log-json", "--color", "always"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.OutputOptions{Verbose: true, LogJSON: true, Color: "always"}, captured)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "satchel version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "satchel version dev (commit: none, date: unknown)\n", buf.String())
}
