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

// InitRequest is sent by a Supervisor to itself to begin initializing a
// freshly-registered child, kicking off the Initializing stage of that
// child's lifecycle.
type InitRequest struct {
	Child *address.Address
}

// InitConfirmation is sent by a Supervisor to itself once a child's
// Behavior's OnInitialize hook has completed successfully.
type InitConfirmation struct {
	Child *address.Address
}

// StartActor is sent by a Supervisor to itself after InitConfirmation,
// authorizing the named child to enter Operational. The child's
// Behavior's OnStart hook is responsible for making that transition.
type StartActor struct {
	Child *address.Address
}

// ShutdownTrigger is sent by a Supervisor to itself to begin a child's own
// shutdown sequence, either by the child's own request (self-initiated) or
// cascaded from the Supervisor's own shutdown. The Supervisor's own
// shutdown is expressed as a ShutdownTrigger addressed to its own Address,
// so it runs through the same OnShutdownStart/unsubscribeAll sequence as
// any child.
type ShutdownTrigger struct {
	Child *address.Address
	// Cascading is true when this shutdown was triggered by the
	// Supervisor itself shutting down, as opposed to the actor's own
	// DoShutdown call. Logged at the point of handling, distinguishing a
	// self-requested shutdown from one forced by the Supervisor's own
	// teardown.
	Cascading bool
}

// ShutdownConfirmation is sent by a Supervisor to itself once a child's
// Behavior's OnShutdownStart hook has completed and the child's handlers
// have been removed from the subscription index.
type ShutdownConfirmation struct {
	Child *address.Address
}

// SubscriptionConfirmation is delivered back to a subscriber once its
// Subscribe call has been committed to the owning Supervisor's index. A
// Base's own subscription bookkeeping (Base.subscriptions) is updated only
// on receipt of this message, never eagerly at the Subscribe call site, so
// it can never record a point the index does not yet actually hold.
type SubscriptionConfirmation struct {
	Point   *address.Address
	Handler *Handler
}

// UnsubscriptionConfirmation is delivered back to an unsubscriber once its
// Unsubscribe call has been committed to the owning Supervisor's index;
// like SubscriptionConfirmation, it is what actually drives removal from
// Base.subscriptions.
type UnsubscriptionConfirmation struct {
	Point   *address.Address
	Handler *Handler
}

// CommitSubscription is the message a subscription point's owning
// Supervisor drains to add a Handler to its index, whether the subscriber
// lives on that same Supervisor or a federated one.
type CommitSubscription struct {
	Point   *address.Address
	Handler *Handler
}

// CommitUnsubscription is the message a subscription point's owning
// Supervisor drains to remove a Handler from its index, sent to a subscription
// point's owning Supervisor regardless of whether the unsubscriber lives
// on that same Supervisor or a federated one.
type CommitUnsubscription struct {
	Point   *address.Address
	Handler *Handler
}

// StateRequest asks an actor (via its owning Supervisor) to report its
// current lifecycle State. Used by tests and lifetime observers.
type StateRequest struct {
	Target  *address.Address
	ReplyTo *address.Address
}

// StateResponse answers a StateRequest.
type StateResponse struct {
	State State
}

// TimerFired is delivered internally to a Supervisor's Process loop when a
// timer.Driver invokes its fire callback, correlating back to a pending
// Request via the Supervisor's own timer-id table.
type TimerFired struct {
	TimerID string
}

// requestEnvelope carries a typed request payload plus the correlation and
// routing metadata Request needs to match a later Reply and deliver it (or
// a timeout/cancellation) back to the origin actor.
//
// requestEnvelope is parameterized by Req so that message.TagOf derives a
// distinct message.Tag per request payload type. HandleRequest subscribes
// against requestEnvelope[Req] rather than a single shared concrete type,
// which is what lets two HandleRequest registrations for distinct Req
// types coexist on the same Base: they are distinguished by tag before
// dispatch ever reaches either handler, not by a runtime type assertion
// inside a shared handler body (which would depend on the closure's
// funcTag, itself not guaranteed distinct across generic instantiations
// that share an underlying representation).
type requestEnvelope[Req any] struct {
	RequestID string
	ReplyTo   *address.Address
	Payload   Req
}

// responseEnvelope carries a typed reply payload plus the RequestID it
// answers, back to the requester's framework-internal response handler.
type responseEnvelope struct {
	RequestID string
	Payload   any
	Err       error
}
