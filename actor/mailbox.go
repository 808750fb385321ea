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
	"sync/atomic"
)

// Mailbox is the queue a Supervisor drains on its own goroutine. Enqueue
// must be safe for concurrent callers (any number of other supervisors'
// goroutines route messages into it); Dequeue is only ever called by the
// owning Supervisor's own Process loop.
type Mailbox interface {
	// Enqueue places value at the tail. Never blocks on DefaultMailbox;
	// may return ErrMailboxFull on a bounded implementation.
	Enqueue(value any) error
	// Dequeue removes and returns the head, or nil if empty.
	Dequeue() any
	// Len returns a best-effort count of queued messages.
	Len() int64
	// IsEmpty reports whether the mailbox currently holds no messages.
	IsEmpty() bool
	// Dispose releases any resources held by the mailbox.
	Dispose()
}

// mpscNode is a node in DefaultMailbox's lock-free queue.
type mpscNode struct {
	next atomic.Pointer[mpscNode]
	data any
}

var mpscNodePool = sync.Pool{New: func() any { return new(mpscNode) }}

// DefaultMailbox is an unbounded, lock-free Multi-Producer Single-Consumer
// mailbox. Many supervisor goroutines may Enqueue concurrently; exactly one
// goroutine — the owning Supervisor's Process loop — may Dequeue.
//
// FIFO ordering across all producers is preserved. Enqueue never blocks and
// never fails. Len is an O(n) diagnostic snapshot; IsEmpty is O(1).
type DefaultMailbox struct {
	head  atomic.Pointer[mpscNode] // consumer only
	_pad1 [64]byte
	tail  atomic.Pointer[mpscNode] // producers only
	_pad2 [64]byte
}

var _ Mailbox = (*DefaultMailbox)(nil)

// NewDefaultMailbox creates an empty DefaultMailbox, seeded with a dummy
// node so producers can always append by swapping the tail.
func NewDefaultMailbox() *DefaultMailbox {
	dummy := mpscNodePool.Get().(*mpscNode)
	dummy.next.Store(nil)
	dummy.data = nil
	m := &DefaultMailbox{}
	m.head.Store(dummy)
	m.tail.Store(dummy)
	return m
}

func (m *DefaultMailbox) Enqueue(value any) error {
	n := mpscNodePool.Get().(*mpscNode)
	n.next.Store(nil)
	n.data = value

	prev := m.tail.Swap(n)
	prev.next.Store(n)
	return nil
}

func (m *DefaultMailbox) Dequeue() any {
	head := m.head.Load()
	next := head.next.Load()
	if next == nil {
		return nil
	}

	m.head.Store(next)
	value := next.data

	head.next.Store(nil)
	head.data = nil
	mpscNodePool.Put(head)
	return value
}

func (m *DefaultMailbox) Len() int64 {
	h := m.head.Load()
	n := h.next.Load()
	var count int64
	for n != nil {
		count++
		n = n.next.Load()
	}
	return count
}

func (m *DefaultMailbox) IsEmpty() bool {
	head := m.head.Load()
	return head.next.Load() == nil
}

func (m *DefaultMailbox) Dispose() {}

// BoundedMailbox is a fixed-capacity, channel-backed Mailbox. Enqueue
// returns ErrMailboxFull rather than blocking a producer's own drain loop,
// which matters when producer and consumer are different supervisors that
// must never stall on one another.
type BoundedMailbox struct {
	ch chan any
}

var _ Mailbox = (*BoundedMailbox)(nil)

// NewBoundedMailbox creates a BoundedMailbox with room for capacity
// messages.
func NewBoundedMailbox(capacity int) *BoundedMailbox {
	return &BoundedMailbox{ch: make(chan any, capacity)}
}

func (b *BoundedMailbox) Enqueue(value any) error {
	select {
	case b.ch <- value:
		return nil
	default:
		return ErrMailboxFull
	}
}

func (b *BoundedMailbox) Dequeue() any {
	select {
	case v := <-b.ch:
		return v
	default:
		return nil
	}
}

func (b *BoundedMailbox) Len() int64 { return int64(len(b.ch)) }

func (b *BoundedMailbox) IsEmpty() bool { return len(b.ch) == 0 }

func (b *BoundedMailbox) Dispose() {
	for {
		select {
		case <-b.ch:
		default:
			return
		}
	}
}
