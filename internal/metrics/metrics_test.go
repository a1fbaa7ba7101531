package metrics

import (
	"strings"
	"testing"

	"github.com/javi11/poolkeeper/pkg/resourcepool"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticStats []resourcepool.Stats

func (s staticStats) Stats() []resourcepool.Stats { return s }

func TestCollector(t *testing.T) {
	key := resourcepool.NewKey("a")
	stats := staticStats{
		{Key: key, Size: 3, Idle: 1, Busy: 2, Waiting: 4, MaximumSize: 3, Created: 5, Destroyed: 2, Acquired: 7, Timeouts: 1},
	}

	c := NewCollector(stats)

	// One pools gauge plus five gauges and five counters per pool.
	assert.Equal(t, 11, testutil.CollectAndCount(c))

	expected := `
# HELP poolkeeper_pool_acquired_total Resources handed out, new or reused.
# TYPE poolkeeper_pool_acquired_total counter
poolkeeper_pool_acquired_total{pool="` + key.String() + `"} 7
# HELP poolkeeper_pool_busy Resources on loan.
# TYPE poolkeeper_pool_busy gauge
poolkeeper_pool_busy{pool="` + key.String() + `"} 2
# HELP poolkeeper_pool_created_total Resources created.
# TYPE poolkeeper_pool_created_total counter
poolkeeper_pool_created_total{pool="` + key.String() + `"} 5
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected), "poolkeeper_pool_acquired_total", "poolkeeper_pool_busy", "poolkeeper_pool_created_total")
	require.NoError(t, err)
}

func TestCollectorEmpty(t *testing.T) {
	c := NewCollector(staticStats{})

	assert.Equal(t, 1, testutil.CollectAndCount(c))
	assert.Equal(t, float64(0), testutil.ToFloat64(c))
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(staticStats{{Key: resourcepool.NewKey("a")}})

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	assert.Contains(t, names, "poolkeeper_pools")
	assert.Contains(t, names, "poolkeeper_pool_idle")
	assert.Contains(t, names, "go_goroutines")
}
