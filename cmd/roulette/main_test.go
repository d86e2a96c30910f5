package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/casino/config"
	"github.com/luca-patrignani/casino/store"
)

// syncBuffer lets the test read output while the game goroutine may still
// be printing a prompt.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDataDir, dir)
	t.Setenv(config.EnvRedisURL, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvSeed, "3")
	return dir
}

func savedBankroll(t *testing.T, dir string) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "roulette_stats.json"))
	require.NoError(t, err)
	rec, err := store.Decode(data)
	require.NoError(t, err)
	return rec.Bankroll
}

func TestRunOneSpin(t *testing.T) {
	dir := setup(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), strings.NewReader("\n1\n50\ns\n\n\nq\n"), &out, &errOut)

	assert.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "RESULT:")
	assert.Contains(t, out.String(), "Final Bankroll:")
	assert.Contains(t, []int{950, 1050}, savedBankroll(t, dir))
}

func TestRunQuitRefundsBets(t *testing.T) {
	dir := setup(t)

	code := run(context.Background(), strings.NewReader("\n2\n300\nq\n"), io.Discard, io.Discard)

	assert.Equal(t, 0, code)
	assert.Equal(t, 1000, savedBankroll(t, dir))
}

func TestRunInterrupted(t *testing.T) {
	dir := setup(t)
	in, _ := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out syncBuffer

	code := run(ctx, in, &out, io.Discard)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Final Bankroll: $1000")
	assert.Equal(t, 1000, savedBankroll(t, dir))
}
