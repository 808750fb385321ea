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

import "github.com/MerlinXYoung/cpp-rotor/address"

// subscriptionIndex maps a subscription point to the ordered list of
// Handlers registered against it. It is owned exclusively by one
// Supervisor and mutated only from that Supervisor's own Process
// goroutine, so it needs no mutex: every mutation arrives as a message
// drained one at a time off the Supervisor's Mailbox.
type subscriptionIndex struct {
	points map[*address.Address][]*Handler
}

func newSubscriptionIndex() *subscriptionIndex {
	return &subscriptionIndex{points: make(map[*address.Address][]*Handler)}
}

// add appends h to the handlers registered at point, preserving insertion
// order. Duplicate (point, h) registrations are rejected silently since a
// caller resubscribing the same bound method is almost always a logic bug
// caught more usefully elsewhere; here it is simply a no-op.
func (idx *subscriptionIndex) add(point *address.Address, h *Handler) {
	for _, existing := range idx.points[point] {
		if existing.Equal(h) {
			return
		}
	}
	idx.points[point] = append(idx.points[point], h)
}

// remove deletes h from point's handler list, if present. Reports whether
// it was found.
func (idx *subscriptionIndex) remove(point *address.Address, h *Handler) bool {
	handlers, ok := idx.points[point]
	if !ok {
		return false
	}
	for i, existing := range handlers {
		if existing.Equal(h) {
			idx.points[point] = append(handlers[:i:i], handlers[i+1:]...)
			if len(idx.points[point]) == 0 {
				delete(idx.points, point)
			}
			return true
		}
	}
	return false
}

// snapshot returns a copy of the handler slice registered at point, safe
// to range over even if a handler unsubscribes itself mid-delivery: the
// live dispatch loop iterates this frozen slice, never idx.points[point]
// directly.
func (idx *subscriptionIndex) snapshot(point *address.Address) []*Handler {
	handlers := idx.points[point]
	if len(handlers) == 0 {
		return nil
	}
	out := make([]*Handler, len(handlers))
	copy(out, handlers)
	return out
}

// removeOwner drops every Handler owned by owner, across every
// subscription point, used when an actor completes its own shutdown.
func (idx *subscriptionIndex) removeOwner(owner *Base) {
	for point, handlers := range idx.points {
		filtered := handlers[:0:0]
		for _, h := range handlers {
			if h.Owner() != owner {
				filtered = append(filtered, h)
			}
		}
		if len(filtered) == 0 {
			delete(idx.points, point)
		} else {
			idx.points[point] = filtered
		}
	}
}
