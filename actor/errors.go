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
	"errors"
	"fmt"
)

var (
	// ErrRequestTimeout indicates that a Request's armed timer fired before
	// its Reply arrived.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrRequestCancelled indicates a pending Request was cancelled because
	// its owning actor entered ShuttingDown before a Reply arrived.
	ErrRequestCancelled = errors.New("request cancelled")

	// ErrActorShutDown is returned by operations attempted against an actor
	// already in the ShutDown state.
	ErrActorShutDown = errors.New("actor is shut down")

	// ErrUnknownAddress is what Request's onErr receives, wrapped, when a
	// Reply's payload is not of the requester's Resp type. Routing to an
	// address its owner does not recognize does not return it.
	ErrUnknownAddress = errors.New("address not known to this supervisor")

	// ErrNilAddress is returned when an operation is given a nil destination
	// address.
	ErrNilAddress = errors.New("destination address is nil")

	// ErrMailboxFull is returned by a bounded Mailbox when Enqueue is called
	// past capacity.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrSupervisorStopped is returned by Send and Subscribe aimed at a
	// Supervisor on which Shutdown has already been called.
	ErrSupervisorStopped = errors.New("supervisor has stopped")

	// ErrNoSuchHandler is returned by Unsubscribe when the given handler is
	// not currently subscribed at the given address.
	ErrNoSuchHandler = errors.New("handler not subscribed at this address")
)

// invariantViolation panics with a message identifying a programming error:
// a caller violated a precondition the runtime does not attempt to recover
// from. Framework code calls this only for conditions spec'd as undefined
// behavior, never for ordinary runtime failures.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("actor: invariant violated: "+format, args...))
}

// wrapf wraps err with additional context, following the fmt.Errorf %w
// convention used throughout this module.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
