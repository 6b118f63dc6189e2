package adapter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/ivedit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not available on windows")
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))

	return path
}

func TestLocalCompilerRunnerAdapter_Run(t *testing.T) {
	t.Run("captures both streams and the exit code", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeScript(t, dir, "fake", `printf 'out:%s' "$1"; printf 'err:%s' "$2" >&2; exit 3`)

		runner := NewLocalCompilerRunnerAdapter()
		res, err := runner.Run(context.Background(), m.Invocation{
			Executable: exe,
			Args:       []string{"prog.iv", "prog"},
			Dir:        m.Path(dir),
		})
		require.NoError(t, err)

		assert.Equal(t, "out:prog.iv", string(res.Stdout))
		assert.Equal(t, "err:prog", string(res.Stderr))
		assert.Equal(t, 3, res.ExitCode)
	})

	t.Run("runs in the requested directory", func(t *testing.T) {
		dir := t.TempDir()
		work := t.TempDir()
		exe := writeScript(t, dir, "pwd", `pwd`)

		res, err := NewLocalCompilerRunnerAdapter().Run(context.Background(), m.Invocation{
			Executable: exe,
			Dir:        m.Path(work),
		})
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(work)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(strings.TrimSpace(string(res.Stdout)))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("large output on both streams does not deadlock", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeScript(t, dir, "noisy", `i=0
while [ $i -lt 2000 ]; do
  echo "stdout line $i with some padding to fill the pipe buffer"
  echo "stderr line $i with some padding to fill the pipe buffer" >&2
  i=$((i+1))
done
`)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := NewLocalCompilerRunnerAdapter().Run(ctx, m.Invocation{Executable: exe, Dir: m.Path(dir)})
		require.NoError(t, err)
		assert.Equal(t, 2000, strings.Count(string(res.Stdout), "\n"))
		assert.Equal(t, 2000, strings.Count(string(res.Stderr), "\n"))
	})

	t.Run("missing executable fails to start", func(t *testing.T) {
		_, err := NewLocalCompilerRunnerAdapter().Run(context.Background(), m.Invocation{
			Executable: filepath.Join(t.TempDir(), "does-not-exist"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start")
	})

	t.Run("empty executable is rejected", func(t *testing.T) {
		_, err := NewLocalCompilerRunnerAdapter().Run(context.Background(), m.Invocation{})
		require.Error(t, err)
	})

	t.Run("cancelled context interrupts the run", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeScript(t, dir, "slow", "exec sleep 10\n")

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := NewLocalCompilerRunnerAdapter().Run(ctx, m.Invocation{Executable: exe, Dir: m.Path(dir)})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("helper holding the pipes does not outlive the timeout", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeScript(t, dir, "forks", "sleep 5 &\nsleep 5\n")

		runner := NewLocalCompilerRunnerAdapter()
		runner.waitDelay = 100 * time.Millisecond

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		started := time.Now()
		_, err := runner.Run(ctx, m.Invocation{Executable: exe, Dir: m.Path(dir)})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(started), 3*time.Second)
	})

	t.Run("helper left running after a normal exit", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeScript(t, dir, "leaves-helper", "sleep 5 &\necho done\n")

		runner := NewLocalCompilerRunnerAdapter()
		runner.waitDelay = 100 * time.Millisecond

		started := time.Now()
		res, err := runner.Run(context.Background(), m.Invocation{Executable: exe, Dir: m.Path(dir)})
		require.NoError(t, err)
		assert.Equal(t, "done\n", string(res.Stdout))
		assert.Equal(t, 0, res.ExitCode)
		assert.Less(t, time.Since(started), 3*time.Second)
	})
}
