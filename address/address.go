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

// Package address provides the opaque identity that every actor and every
// message destination in the runtime is addressed by.
//
// Unlike a network address, an Address carries no routing information of its
// own beyond the identity of the supervisor that minted it. Two addresses are
// the same address iff they are the same *Address value — equality is pointer
// identity, never a value or string comparison, mirroring the "intrusive
// pointer, compared by identity" address model of the runtime this package
// adapts.
//
// Address intentionally knows nothing about messages or actors: its only
// dependency is the small Owner interface, which is implemented by the
// supervisor that created the address. This keeps the dependency graph
// acyclic (actor -> address, never address -> actor).
package address

import (
	"fmt"

	"github.com/google/uuid"
)

// Owner is implemented by whatever created an Address — in practice, a
// Supervisor. It is kept minimal on purpose: an Address needs only enough of
// its owner to route a message to it and to report the locality it belongs
// to for federation purposes.
type Owner interface {
	// Enqueue accepts an already-constructed *message.Envelope (passed as any
	// to avoid an import cycle between address and message) destined for one
	// of this owner's addresses, or one of the owner's own control messages
	// (a Supervisor also takes subscription commits and state requests here).
	Enqueue(envelope any) error

	// Locality returns the cooperative-scheduling domain this owner runs on.
	// Supervisors sharing a locality are guaranteed by the embedder to never
	// run concurrently with respect to each other.
	Locality() string
}

// Address is an opaque actor identity owned by exactly one supervisor.
//
// Address is never constructed directly by user code; it is returned by
// Supervisor.MakeAddress, or minted for each actor a Supervisor creates. Its
// zero value is not meaningful — always take the pointer handed back and
// pass that pointer around.
type Address struct {
	id    string
	owner Owner
}

// New creates an Address bound to the given owner. Only the actor package
// (via Supervisor.MakeAddress and actor creation) is expected to call this;
// it is exported so
// that alternative Owner implementations outside this module's actor package
// remain possible.
func New(owner Owner) *Address {
	return &Address{
		id:    uuid.NewString(),
		owner: owner,
	}
}

// Owner returns the supervisor (or other Owner) that created this address.
// Routing (Send, Subscribe, Unsubscribe) always goes through Owner(), not
// through the caller's own supervisor, which is what makes cross-supervisor
// federation transparent to callers.
func (a *Address) Owner() Owner {
	if a == nil {
		return nil
	}
	return a.owner
}

// Equal reports whether two addresses are the same identity. It is provided
// for readability at call sites; it is exactly equivalent to comparing the
// two pointers with ==.
func (a *Address) Equal(other *Address) bool {
	return a == other
}

// String returns a debug-friendly representation. It is not part of the
// addressing contract and must not be parsed back into an Address.
func (a *Address) String() string {
	if a == nil {
		return "addr://<nil>"
	}
	return fmt.Sprintf("addr://%s", a.id)
}
