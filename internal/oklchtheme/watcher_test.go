package oklchtheme

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultLog struct {
	mu      sync.Mutex
	results []FileResult
}

func (l *resultLog) add(fr FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, fr)
}

func (l *resultLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.results)
}

func TestWatcher_RewritesOnChange(t *testing.T) {
	dir := t.TempDir()
	engine, err := Prepare(testConfig(t, dir))
	require.NoError(t, err)

	target := filepath.Join(dir, "site.css")
	writeFile(t, target, "a { color: oklch(0.6 0.15 250); }\n")

	var log resultLog
	watcher, err := NewWatcher(engine, []string{target}, WatchOptions{
		Debounce: 20 * time.Millisecond,
		OnResult: log.add,
	}, DiscardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	// The initial pass annotates the file.
	require.Eventually(t, func() bool {
		return readFile(t, target) == "a { color: oklch(0.6 0.15 250); /* --color-blue */\n"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(target, []byte("b { color: oklch(1 0 0); }\n"), 0o644))
	require.Eventually(t, func() bool {
		return readFile(t, target) == "b { color: oklch(1 0 0); /* --color-white */\n"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.GreaterOrEqual(t, log.len(), 2)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	engine, err := Prepare(testConfig(t, dir))
	require.NoError(t, err)

	target := filepath.Join(dir, "site.css")
	writeFile(t, target, "a { color: red; }\n")
	other := filepath.Join(dir, "other.css")

	var log resultLog
	watcher, err := NewWatcher(engine, []string{target}, WatchOptions{
		Debounce: 10 * time.Millisecond,
		DryRun:   true,
		OnResult: log.add,
	}, DiscardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	require.Eventually(t, func() bool { return log.len() == 1 }, 2*time.Second, 10*time.Millisecond)

	writeFile(t, other, "b { color: oklch(1 0 0); }\n")
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, log.len())
	assert.Equal(t, "b { color: oklch(1 0 0); }\n", readFile(t, other))

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()
	engine, err := Prepare(testConfig(t, dir))
	require.NoError(t, err)

	target := filepath.Join(dir, "site.css")
	writeFile(t, target, "")

	var log resultLog
	watcher, err := NewWatcher(engine, []string{target}, WatchOptions{
		Debounce: 50 * time.Millisecond,
		DryRun:   true,
		OnResult: log.add,
	}, DiscardLogger())
	require.NoError(t, err)

	abs, err := filepath.Abs(target)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		watcher.schedule(abs)
	}
	watcher.stopTimers()
	assert.Equal(t, 0, log.len())

	watcher.schedule(abs)
	require.Eventually(t, func() bool { return log.len() == 1 }, 2*time.Second, 10*time.Millisecond)
	watcher.stopTimers()
}
