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

package timer_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MerlinXYoung/cpp-rotor/timer"
)

func TestQuartzDriverFires(t *testing.T) {
	var mu sync.Mutex
	fired := make([]string, 0, 1)

	d := timer.NewQuartzDriver(func(id string) {
		mu.Lock()
		fired = append(fired, id)
		mu.Unlock()
	})
	defer d.Stop()

	require.NoError(t, d.StartTimer("t1", 20*time.Millisecond))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) == 1 && fired[0] == "t1"
	}, time.Second, 5*time.Millisecond)
}

func TestQuartzDriverCancelSuppressesFire(t *testing.T) {
	var mu sync.Mutex
	fired := false

	d := timer.NewQuartzDriver(func(string) {
		mu.Lock()
		fired = true
		mu.Unlock()
	})
	defer d.Stop()

	require.NoError(t, d.StartTimer("t2", 50*time.Millisecond))
	d.CancelTimer("t2")

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.False(t, fired)
}

func TestQuartzDriverCancelUnknownIsNoop(t *testing.T) {
	d := timer.NewQuartzDriver(func(string) {})
	defer d.Stop()

	require.NotPanics(t, func() {
		d.CancelTimer("never-armed")
	})
}
