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
	"github.com/MerlinXYoung/cpp-rotor/address"
	"github.com/MerlinXYoung/cpp-rotor/log"
	"github.com/MerlinXYoung/cpp-rotor/message"
)

// Base is the composable actor unit. User code does not subclass Base —
// Go has no virtual dispatch through an embedded pointer — it holds the
// *Base returned by Supervisor.Spawn and supplies a Behavior that the owning
// Supervisor invokes at the right lifecycle points.
type Base struct {
	addr       *address.Address
	supervisor *Supervisor
	behavior   Behavior
	logger     log.Logger

	state State

	pending            map[string]*pendingRequest
	responseSubscribed bool

	subscriptions    []subscriptionRecord
	bookkeepingWired bool
}

// subscriptionRecord remembers one (point, handler) pair this actor
// subscribed, so its own shutdown can unsubscribe from points owned by any
// Supervisor, not just its own.
type subscriptionRecord struct {
	point   *address.Address
	handler *Handler
}

// newBase constructs a Base registered with supervisor under a freshly
// minted address. Supervisor.Spawn calls this for children, and
// NewSupervisor for the Supervisor's own embedded Base.
func newBase(supervisor *Supervisor, behavior Behavior, logger log.Logger) *Base {
	b := &Base{
		supervisor: supervisor,
		behavior:   behavior,
		logger:     logger,
		state:      New,
		pending:    make(map[string]*pendingRequest),
	}
	b.addr = address.New(supervisor)
	return b
}

// Address reports the actor's own opaque, supervisor-owned identity.
func (b *Base) Address() *address.Address { return b.addr }

// Supervisor reports the actor's owning Supervisor.
func (b *Base) Supervisor() *Supervisor { return b.supervisor }

// State reports the actor's current lifecycle stage.
func (b *Base) State() State { return b.state }

// Logger returns the logger this actor was configured with.
func (b *Base) Logger() log.Logger { return b.logger }

// Send delivers payload to dest, routed through dest's own owner, not the
// caller's. dest may belong to any Supervisor, local or federated.
func Send[T any](b *Base, dest *address.Address, payload T) error {
	if b.state == ShutDown {
		return ErrActorShutDown
	}
	if dest == nil {
		return ErrNilAddress
	}
	if sup, ok := dest.Owner().(*Supervisor); ok && sup.Stopped() {
		return ErrSupervisorStopped
	}
	return dest.Owner().Enqueue(message.New(dest, payload))
}

// Subscribe registers fn, a method of self, to run whenever a T-typed
// message is sent to point. point may belong to any Supervisor. The
// Handler it builds is recorded in self.subscriptions only once the owning
// Supervisor confirms the commit (see ensureSubscriptionBookkeeping), so
// self.subscriptions never claims a point the index does not yet hold.
func Subscribe[T any](self *Base, point *address.Address, fn func(T)) error {
	if self.state == ShutDown {
		return ErrActorShutDown
	}
	if point == nil {
		return ErrNilAddress
	}
	if sup, ok := point.Owner().(*Supervisor); ok && sup.Stopped() {
		return ErrSupervisorStopped
	}
	self.ensureSubscriptionBookkeeping()
	h := NewHandler(self, fn)
	return point.Owner().Enqueue(&CommitSubscription{Point: point, Handler: h})
}

// Unsubscribe removes a previously-registered Handler for point. Pass the
// same (self, fn) pair used to Subscribe; Handler equality is by bound
// method identity, not object identity, so a freshly-built Handler works.
// Returns ErrNoSuchHandler if this (point, fn) pair is not currently
// recorded in self.subscriptions: never subscribed, already unsubscribed,
// or subscribed on another Supervisor whose confirmation has not arrived.
// self.subscriptions is only updated once the owning Supervisor confirms
// the removal (see ensureSubscriptionBookkeeping).
func Unsubscribe[T any](self *Base, point *address.Address, fn func(T)) error {
	if point == nil {
		return ErrNilAddress
	}
	h := NewHandler(self, fn)
	if !self.hasSubscription(point, h) {
		return ErrNoSuchHandler
	}
	return point.Owner().Enqueue(&CommitUnsubscription{Point: point, Handler: h})
}

// ensureSubscriptionBookkeeping subscribes self, once, to receive its own
// SubscriptionConfirmation and UnsubscriptionConfirmation deliveries,
// which is what actually maintains self.subscriptions. Registered via a
// direct CommitSubscription rather than the public Subscribe, since
// Subscribe itself depends on this being wired first.
func (b *Base) ensureSubscriptionBookkeeping() {
	if b.bookkeepingWired {
		return
	}
	b.bookkeepingWired = true
	onSubscribed := func(m *SubscriptionConfirmation) {
		b.subscriptions = append(b.subscriptions, subscriptionRecord{point: m.Point, handler: m.Handler})
	}
	onUnsubscribed := func(m *UnsubscriptionConfirmation) {
		b.forgetSubscription(m.Point, m.Handler)
	}
	_ = b.addr.Owner().Enqueue(&CommitSubscription{Point: b.addr, Handler: NewHandler(b, onSubscribed)})
	_ = b.addr.Owner().Enqueue(&CommitSubscription{Point: b.addr, Handler: NewHandler(b, onUnsubscribed)})
}

// forgetSubscription drops a (point, handler) record, e.g. after an
// explicit Unsubscribe, so shutdown cleanup does not double-unsubscribe.
func (b *Base) forgetSubscription(point *address.Address, h *Handler) {
	for i, rec := range b.subscriptions {
		if rec.point == point && rec.handler.Equal(h) {
			b.subscriptions = append(b.subscriptions[:i:i], b.subscriptions[i+1:]...)
			return
		}
	}
}

// hasSubscription reports whether (point, h) is among this actor's
// recorded subscriptions.
func (b *Base) hasSubscription(point *address.Address, h *Handler) bool {
	for _, rec := range b.subscriptions {
		if rec.point == point && rec.handler.Equal(h) {
			return true
		}
	}
	return false
}

// unsubscribeAll tears down every subscription this actor made, across any
// Supervisor, called once while ShuttingDown.
func (b *Base) unsubscribeAll() {
	for _, rec := range b.subscriptions {
		_ = rec.point.Owner().Enqueue(&CommitUnsubscription{Point: rec.point, Handler: rec.handler})
	}
	b.subscriptions = nil
}

// DoShutdown begins this actor's own shutdown sequence. It is a no-op
// returning ErrActorShutDown if the actor has already shut down.
func (b *Base) DoShutdown() error {
	if b.state == ShutDown {
		return ErrActorShutDown
	}
	return b.supervisor.Enqueue(&ShutdownTrigger{Child: b.addr})
}

func (b *Base) markInitializing() { b.state = Initializing }
func (b *Base) markInitialized()  { b.state = Initialized }
func (b *Base) markOperational()  { b.state = Operational }
func (b *Base) markShuttingDown() { b.state = ShuttingDown }
func (b *Base) markShutDown()     { b.state = ShutDown }
