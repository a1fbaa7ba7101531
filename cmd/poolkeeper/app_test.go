package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/javi11/poolkeeper/internal/config"
	"github.com/javi11/poolkeeper/internal/failurelog"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(t *testing.T, yaml string) *config.Config {
	t.Helper()

	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	return cfg
}

// closedPort returns a local port nothing listens on.
func closedPort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	return port
}

func TestNewRegistry(t *testing.T) {
	cfg := testConfig(t, `
pool:
  maximum_size: 4
dialer:
  fake_connections: true
targets:
  - name: primary
    host: news.example.com
    port: 119
    max_connections: 2
  - host: backup.example.com
    port: 563
`)

	d, err := newDialer(cfg, testLog)
	require.NoError(t, err)

	r, err := newRegistry(cfg, d, nil, testLog)
	require.NoError(t, err)
	defer r.Close()

	targets := d.Targets()
	require.Len(t, targets, 2)

	primary, err := r.Pool(targets[0].Key())
	require.NoError(t, err)
	assert.Equal(t, 2, primary.Stats().MaximumSize)

	backup, err := r.Pool(targets[1].Key())
	require.NoError(t, err)
	assert.Equal(t, 4, backup.Stats().MaximumSize)
}

func TestNewRegistryJournalsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	failures := failurelog.NewMockFailureLog(ctrl)

	cfg := testConfig(t, `
pool:
  acquire_timeout: 1s
dialer:
  max_retries: 0
targets:
  - name: down
    host: 127.0.0.1
    port: `+strconv.Itoa(closedPort(t))+`
`)

	d, err := newDialer(cfg, testLog)
	require.NoError(t, err)

	r, err := newRegistry(cfg, d, failures, testLog)
	require.NoError(t, err)
	defer r.Close()

	target := d.Targets()[0]
	failures.EXPECT().Add(gomock.Any(), target.Key().String(), target.String(), gomock.Any()).Return(nil)

	_, err = r.Acquire(context.Background(), target.Key())
	assert.ErrorIs(t, err, resourcepool.ErrFactoryFailed)
}

func TestWarm(t *testing.T) {
	cfg := testConfig(t, `
pool:
  initial_size: 2
dialer:
  fake_connections: true
targets:
  - host: news.example.com
    port: 119
    warm: true
  - host: cold.example.com
    port: 119
`)

	d, err := newDialer(cfg, testLog)
	require.NoError(t, err)

	r, err := newRegistry(cfg, d, nil, testLog)
	require.NoError(t, err)
	defer r.Close()

	warm(context.Background(), r, cfg.Targets, cfg.Pool.InitialSize, testLog)

	stats := r.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, d.Targets()[0].Key(), stats[0].Key)
	assert.Equal(t, 2, stats[0].Idle)
}

func TestProbe(t *testing.T) {
	cfg := testConfig(t, `
pool:
  acquire_timeout: 1s
dialer:
  max_retries: 0
  timeout: 1s
targets:
  - name: down
    host: 127.0.0.1
    port: `+strconv.Itoa(closedPort(t))+`
`)

	d, err := newDialer(cfg, testLog)
	require.NoError(t, err)

	r, err := newRegistry(cfg, d, nil, testLog)
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	err = probe(context.Background(), r, d.Targets(), &out)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "FAIL down")
}

func TestProbeFakeConnections(t *testing.T) {
	cfg := testConfig(t, `
dialer:
  fake_connections: true
targets:
  - name: primary
    host: news.example.com
    port: 119
`)

	d, err := newDialer(cfg, testLog)
	require.NoError(t, err)

	r, err := newRegistry(cfg, d, nil, testLog)
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	require.NoError(t, probe(context.Background(), r, d.Targets(), &out))
	assert.Contains(t, out.String(), "OK   primary (news.example.com:119)")
}

func TestPurgeFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	failures := failurelog.NewMockFailureLog(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	purged := make(chan struct{})
	failures.EXPECT().Purge(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, olderThan time.Time) (int64, error) {
		assert.WithinDuration(t, time.Now().Add(-time.Hour), olderThan, time.Second)
		once.Do(func() {
			close(purged)
			cancel()
		})
		return 1, nil
	}).MinTimes(1)

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	go func() {
		purgeFailures(ctx, failures, time.Hour, ticker, testLog)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("purge loop did not stop")
	}

	<-purged
}
