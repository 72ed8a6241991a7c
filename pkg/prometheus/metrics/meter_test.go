package metrics

import (
	"testing"

	"github.com/Borislavv/go-sharded-map/pkg/sharded"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeterCounts(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.IncEmplace(true)
	m.IncEmplace(true)
	m.IncEmplace(false)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.emplaceCounter.WithLabelValues("inserted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emplaceCounter.WithLabelValues("existing")))

	m.IncFind(true)
	m.IncFind(false)
	m.IncFind(false)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.findCounter.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.findCounter.WithLabelValues("miss")))

	m.IncErase(0)
	m.IncErase(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.eraseCounter))

	m.SetLength(7)
	m.SetShardFill(1, 5)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.lengthGauge))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shardMinGauge))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.shardMaxGauge))
}

func TestMeterDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	assert.Error(t, err)
}

func TestInstrumentedFeedsMeter(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	smap := sharded.NewMap[string, int](sharded.HashString, 8, 4)
	instr := NewInstrumented(smap, m)

	instr.TryEmplace("a", func() int { return 1 })
	instr.TryEmplace("a", func() int { return 2 })
	instr.Find("a")
	instr.Find("missing")
	instr.Erase("a")
	instr.Erase("a")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.emplaceCounter.WithLabelValues("inserted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emplaceCounter.WithLabelValues("existing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.findCounter.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.findCounter.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eraseCounter))
	assert.Same(t, smap, instr.Map())
}

func TestSampleObservesFillSpread(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	smap := sharded.NewMap[int, int](sharded.HashKeyer[int], 4, 4)
	// Shard 0 gets {0,4,8}, shard 1 gets {1}, shards 2 and 3 stay empty.
	for _, key := range []int{0, 4, 8, 1} {
		smap.TryEmplace(key, func() int { return key })
	}

	sample(m, smap)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.lengthGauge))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.shardMinGauge))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.shardMaxGauge))
}
