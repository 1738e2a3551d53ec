package sampler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackr/internal/services/sampler"
	"trackr/internal/testutil"
)

const waitFor = 2 * time.Second

func TestSampler_KeepsLastGoodValue(t *testing.T) {
	var calls atomic.Int32
	gauge := sampler.GaugeFunc(func(context.Context) (float64, error) {
		n := calls.Add(1)
		switch {
		case n == 1:
			return 40, nil
		case n%2 == 0:
			return 0, errors.New("gauge busy")
		default:
			panic("gauge exploded")
		}
	})

	s := sampler.New(gauge, time.Millisecond, testutil.Logger())
	_, ok := s.Last()
	require.False(t, ok)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 5 }, waitFor, time.Millisecond)

	assert.True(t, s.Alive(), "bad samples never stop the loop")
	value, ok := s.Last()
	assert.True(t, ok)
	assert.InDelta(t, 40.0, value, 0.001)

	s.Stop()
	assert.False(t, s.Alive())
}

func TestSampler_StopHaltsSampling(t *testing.T) {
	var calls atomic.Int32
	gauge := sampler.GaugeFunc(func(context.Context) (float64, error) {
		calls.Add(1)
		return 1, nil
	})

	s := sampler.New(gauge, time.Hour, testutil.Logger())
	s.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, time.Millisecond)

	s.Stop()
	s.Stop()

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
	assert.False(t, s.Alive())
}

func TestSampler_StopWithoutStart(t *testing.T) {
	s := sampler.New(sampler.GaugeFunc(func(context.Context) (float64, error) { return 0, nil }), 0, testutil.Logger())

	s.Stop()

	assert.False(t, s.Alive())
}

func TestSampler_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := sampler.New(sampler.GaugeFunc(func(context.Context) (float64, error) { return 5, nil }), time.Hour, testutil.Logger())

	s.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return !s.Alive() }, waitFor, time.Millisecond)
}

func TestCPUGauge(t *testing.T) {
	value, err := sampler.CPUGauge().Sample(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, 0.0)
	assert.LessOrEqual(t, value, 100.0)
}
