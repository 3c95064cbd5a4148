// SPDX-License-Identifier: MIT
//
// File: scheduler_test.go
// Role: tests for drive, cancel and step-delay behavior under a FakeClock.

package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/scheduler"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// countdown returns a StepFunc that asks for n calls in total.
func countdown(n int, calls *int32) scheduler.StepFunc {
	return func() bool {
		return atomic.AddInt32(calls, 1) < int32(n)
	}
}

func TestScheduler_DrivesUntilDone(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk), scheduler.WithDelay(100*time.Millisecond))

	var calls int32
	s.Start(countdown(3, &calls))
	require.True(t, s.Active())

	clk.Advance(99 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&calls), "nothing fires before the delay")

	clk.Advance(1 * time.Millisecond)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	clk.Advance(250 * time.Millisecond)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
	require.False(t, s.Active())
	require.Zero(t, clk.Pending())

	require.NoError(t, s.Wait(context.Background()))
}

func TestScheduler_CancelStopsPendingStep(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk))

	var calls int32
	s.Start(countdown(10, &calls))
	clk.Advance(scheduler.DefaultDelay)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	require.True(t, s.Cancel())
	require.False(t, s.Active())
	require.Zero(t, clk.Pending())

	clk.Advance(10 * scheduler.DefaultDelay)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.False(t, s.Cancel(), "second cancel is a no-op")
}

func TestScheduler_StartSupersedes(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk))

	var first, second int32
	s.Start(countdown(10, &first))
	s.Start(countdown(2, &second))

	clk.Advance(5 * scheduler.DefaultDelay)
	require.Zero(t, atomic.LoadInt32(&first))
	require.EqualValues(t, 2, atomic.LoadInt32(&second))
}

func TestScheduler_CancelFromInsideStep(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk))

	var calls int32
	s.Start(func() bool {
		atomic.AddInt32(&calls, 1)
		s.Cancel()
		return true
	})
	clk.Advance(5 * scheduler.DefaultDelay)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.False(t, s.Active())
}

func TestScheduler_StaleTimerIgnored(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk))

	var calls int32
	s.Start(countdown(1, &calls))
	s.Cancel()
	s.Start(countdown(1, &calls))

	clk.Advance(scheduler.DefaultDelay)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestScheduler_SetDelay(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk))
	s.SetDelay(10 * time.Millisecond)
	s.SetDelay(-1)
	require.Equal(t, 10*time.Millisecond, s.Delay())

	var calls int32
	s.Start(countdown(2, &calls))
	clk.Advance(20 * time.Millisecond)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestScheduler_WaitHonoursContext(t *testing.T) {
	clk := scheduler.NewFakeClock(epoch)
	s := scheduler.New(scheduler.WithClock(clk))
	s.Start(func() bool { return true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Wait(ctx), context.Canceled)
	s.Cancel()
	require.NoError(t, s.Wait(context.Background()))
}

func TestScheduler_RealClock(t *testing.T) {
	s := scheduler.New(scheduler.WithDelay(time.Millisecond))
	var calls int32
	s.Start(countdown(3, &calls))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Wait(ctx))
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
}
