/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type pongPayload struct{ n int }

func TestCrossSupervisorPingPong(t *testing.T) {
	supA := NewSupervisor(WithTimerDriver(newFakeTimerDriver(func(string) {})))
	supB := NewSupervisor(WithTimerDriver(newFakeTimerDriver(func(string) {})))
	cancelA := runSupervisor(t, supA)
	cancelB := runSupervisor(t, supB)
	defer cancelA()
	defer cancelB()

	require.NotEqual(t, supA.Locality(), supB.Locality())

	pinger := supA.Spawn(DefaultBehavior{})
	ponger := supB.Spawn(DefaultBehavior{})
	waitOperational(t, pinger)
	waitOperational(t, ponger)

	var mu sync.Mutex
	var gotPong *pongPayload

	require.NoError(t, Subscribe(pinger, pinger.Address(), func(p pongPayload) {
		mu.Lock()
		gotPong = &p
		mu.Unlock()
	}))
	require.NoError(t, Subscribe(ponger, ponger.Address(), func(p pingPayload) {
		_ = Send(ponger, pinger.Address(), pongPayload{n: p.n + 1})
	}))

	require.NoError(t, Send(pinger, ponger.Address(), pingPayload{n: 41}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return gotPong != nil
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 42, gotPong.n)
}

func TestCrossSupervisorUnsubscriptionOnShutdown(t *testing.T) {
	supA := NewSupervisor(WithTimerDriver(newFakeTimerDriver(func(string) {})))
	supB := NewSupervisor(WithTimerDriver(newFakeTimerDriver(func(string) {})))
	cancelA := runSupervisor(t, supA)
	cancelB := runSupervisor(t, supB)
	defer cancelA()
	defer cancelB()

	subscriber := supA.Spawn(DefaultBehavior{})
	waitOperational(t, subscriber)

	point := supB.MakeAddress()
	require.NoError(t, Subscribe(subscriber, point, func(pingPayload) {}))

	require.Eventually(t, func() bool {
		return len(supB.idx.snapshot(point)) == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, subscriber.DoShutdown())

	require.Eventually(t, func() bool {
		return len(supB.idx.snapshot(point)) == 0
	}, time.Second, time.Millisecond)
	require.Equal(t, ShutDown, subscriber.State())
}
