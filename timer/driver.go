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

// Package timer defines the external-collaborator contract the actor runtime
// drives for request timeouts, plus a concrete go-quartz-backed
// implementation.
//
// The runtime core never assumes a particular timer backend: it only ever
// calls StartTimer/CancelTimer and expects the fire callback supplied at
// construction to eventually be invoked (or not, if cancelled first).
package timer

import "time"

// Driver arms and cancels opaque, string-identified, one-shot timers.
//
// Cancellation is idempotent: cancelling an id that already fired, or that
// was never armed, is a silent no-op. A fired id that is cancelled
// concurrently with its fire callback racing in may still invoke the fire
// callback once — callers (the actor runtime) are expected to treat a fire
// for an id they no longer recognize as stale and discard it.
type Driver interface {
	// StartTimer arms a one-shot timer under id, firing after d.
	StartTimer(id string, d time.Duration) error
	// CancelTimer cancels the timer under id, if still pending.
	CancelTimer(id string)
}
