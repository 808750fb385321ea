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
	"time"
)

// fakeTimerDriver is a manually-fired timer.Driver double, used by tests
// that exercise request-timeout logic without waiting on wall-clock time
// or spinning up a real go-quartz scheduler.
type fakeTimerDriver struct {
	mu        sync.Mutex
	fire      func(id string)
	armed     map[string]bool
	durations map[string]time.Duration
	// started reports every id as soon as StartTimer registers it, so
	// tests on another goroutine can learn the id without racing on the
	// driver's own internal maps.
	started chan string
}

func newFakeTimerDriver(fire func(id string)) *fakeTimerDriver {
	return &fakeTimerDriver{
		fire:      fire,
		armed:     make(map[string]bool),
		durations: make(map[string]time.Duration),
		started:   make(chan string, 16),
	}
}

func (f *fakeTimerDriver) StartTimer(id string, d time.Duration) error {
	f.mu.Lock()
	f.armed[id] = true
	f.durations[id] = d
	f.mu.Unlock()
	f.started <- id
	return nil
}

func (f *fakeTimerDriver) CancelTimer(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.armed, id)
}

// Trigger manually fires id as if its duration had elapsed, unless it was
// cancelled first.
func (f *fakeTimerDriver) Trigger(id string) {
	f.mu.Lock()
	armed := f.armed[id]
	f.mu.Unlock()
	if !armed {
		return
	}
	f.fire(id)
}
