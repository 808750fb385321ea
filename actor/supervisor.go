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

// Package actor implements the in-process actor runtime: addresses,
// typed message dispatch through a per-supervisor subscription index,
// request/reply with timeouts, and multi-supervisor federation.
package actor

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/MerlinXYoung/cpp-rotor/address"
	"github.com/MerlinXYoung/cpp-rotor/log"
	"github.com/MerlinXYoung/cpp-rotor/message"
	"github.com/MerlinXYoung/cpp-rotor/timer"
)

// pollInterval bounds how long Process can block waiting for work when no
// notification has arrived, as a backstop against a missed signal.
const pollInterval = 50 * time.Millisecond

// timerCorrelation remembers which actor armed a given opaque timer id, and
// under which RequestID, so a TimerFired can be routed back.
type timerCorrelation struct {
	owner     *Base
	requestID string
}

// Supervisor owns a set of child actors, their subscription index, and the
// single goroutine that drains its Mailbox. It implements address.Owner,
// so addresses it mints route Send/Subscribe/Unsubscribe back through it
// regardless of which goroutine the caller is running on.
//
// Supervisor is itself an actor: it embeds a *Base under its own address
// and runs through the same New/Initializing/Initialized/Operational/
// ShuttingDown/ShutDown lifecycle as any child, driven by the same
// InitRequest/InitConfirmation/StartActor/ShutdownTrigger/
// ShutdownConfirmation messages it uses to drive its children. Its own
// shutdown is sequenced to run only after every child has retired, so that
// by the time it reaches ShutDown its subscription index and points are
// empty, same as a child's.
type Supervisor struct {
	*Base

	mailbox  Mailbox
	idx      *subscriptionIndex
	children map[*address.Address]*Base
	// shuttingDown tracks children whose ShutdownConfirmation is still
	// outstanding. It is bookkeeping only: no shutdown decision reads it.
	shuttingDown mapset.Set[*address.Address]

	logger      log.Logger
	locality    string
	timerDriver timer.Driver
	ownsTimer   bool
	timers      map[string]timerCorrelation

	notify  chan struct{}
	done    chan struct{}
	stopped atomic.Bool
}

var _ address.Owner = (*Supervisor)(nil)

// NewSupervisor constructs a Supervisor. By default it uses a
// DefaultMailbox, a discard logger, a process-unique locality token, and a
// QuartzDriver-backed timer.Driver it owns and stops on Shutdown.
func NewSupervisor(opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		mailbox:      NewDefaultMailbox(),
		idx:          newSubscriptionIndex(),
		children:     make(map[*address.Address]*Base),
		shuttingDown: mapset.NewThreadUnsafeSet[*address.Address](),
		logger:       log.DiscardLogger,
		locality:     uuid.NewString(),
		timers:       make(map[string]timerCorrelation),
		notify:       make(chan struct{}, 1),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timerDriver == nil {
		s.timerDriver = timer.NewQuartzDriver(s.onTimerFired)
		s.ownsTimer = true
	}
	s.Base = newBase(s, DefaultBehavior{}, s.logger)
	_ = s.Enqueue(&InitRequest{Child: s.Base.addr})
	return s
}

// actorFor resolves addr to the Base it drives: the Supervisor's own
// embedded Base when addr is its own address, otherwise a registered
// child. This is what lets every handle* function below drive the
// Supervisor's own lifecycle through the identical code path used for
// children, rather than duplicating it.
func (s *Supervisor) actorFor(addr *address.Address) (*Base, bool) {
	if addr == s.Base.addr {
		return s.Base, true
	}
	child, ok := s.children[addr]
	return child, ok
}

// DoShutdown shadows the promoted Base.DoShutdown: calling it directly on
// a Supervisor begins the Supervisor's own shutdown (cascading to every
// child) rather than enqueuing a lone ShutdownTrigger that would bypass
// the cascade and orphan live children.
func (s *Supervisor) DoShutdown() error {
	return s.Shutdown()
}

// Locality reports the token identifying which goroutine this Supervisor
// runs its Process loop on. Two Supervisors sharing a Locality are
// guaranteed never to run concurrently with one another.
func (s *Supervisor) Locality() string { return s.locality }

// Stopped reports whether Shutdown has been called. A stopped Supervisor
// still drains its Mailbox until every child confirms shutdown, but Send and
// Subscribe aimed at it return ErrSupervisorStopped. Unsubscribe does not
// check it.
func (s *Supervisor) Stopped() bool { return s.stopped.Load() }

// Enqueue places v on this Supervisor's own Mailbox. It is safe for
// concurrent callers, including the Supervisor's own goroutine and any
// timer.Driver fire callback.
func (s *Supervisor) Enqueue(v any) error {
	if err := s.mailbox.Enqueue(v); err != nil {
		return err
	}
	select {
	case s.notify <- struct{}{}:
	default:
	}
	return nil
}

// MakeAddress mints a fresh Address owned by this Supervisor, independent
// of actor Spawn — used for subscription points with no actor backing
// them (e.g. a purely-topical broadcast address).
func (s *Supervisor) MakeAddress() *address.Address {
	return address.New(s)
}

// Spawn registers a new child actor driven by behavior and returns its
// Base. The child is not yet Operational: Spawn enqueues the InitRequest
// that begins its lifecycle round-trip, processed the next time Process
// drains the Mailbox.
//
// Spawn mutates the Supervisor's child table directly and must only be
// called from the Supervisor's own Locality: either before Process starts,
// or from within a handler running on Process's own goroutine. Calling it
// concurrently with a running Process from another goroutine is undefined
// behavior, same as any other unsynchronized access to actor-owned state.
func (s *Supervisor) Spawn(behavior Behavior) *Base {
	b := newBase(s, behavior, s.logger)
	s.children[b.addr] = b
	_ = s.Enqueue(&InitRequest{Child: b.addr})
	return b
}

// Process drains the Mailbox until ctx is cancelled or Shutdown has been
// called and every child has fully shut down. It must be called from
// exactly one goroutine per Supervisor; that goroutine is this
// Supervisor's Locality.
func (s *Supervisor) Process(ctx context.Context) error {
	defer close(s.done)
	for {
		for {
			msg := s.mailbox.Dequeue()
			if msg == nil {
				break
			}
			s.handle(msg)
		}

		if s.stopped.Load() && s.mailbox.IsEmpty() && len(s.children) == 0 && s.Base.state == ShutDown {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.notify:
		case <-time.After(pollInterval):
		}
	}
}

// Shutdown cascades ShutdownTrigger to every remaining child and marks
// this Supervisor to stop once they have all confirmed. The Supervisor's
// own ShutdownTrigger, addressed to itself, is deferred until every child
// has confirmed (see handleShutdownConfirmation) unless there are no
// children at all, in which case it is triggered immediately. Shutdown
// does not block until Process returns; call Wait for that.
func (s *Supervisor) Shutdown() error {
	if s.stopped.Load() {
		return nil
	}
	s.stopped.Store(true)
	if len(s.children) == 0 {
		return s.Enqueue(&ShutdownTrigger{Child: s.Base.addr})
	}
	var errs error
	for addr := range s.children {
		errs = multierr.Append(errs, s.Enqueue(&ShutdownTrigger{Child: addr, Cascading: true}))
	}
	return errs
}

// Wait blocks until Process has returned.
func (s *Supervisor) Wait() {
	<-s.done
}

func (s *Supervisor) handle(msg any) {
	switch m := msg.(type) {
	case *message.Envelope:
		s.dispatch(m)
	case *CommitSubscription:
		s.idx.add(m.Point, m.Handler)
		owner := m.Handler.Owner()
		conf := message.New(owner.Address(), &SubscriptionConfirmation{Point: m.Point, Handler: m.Handler})
		if owner.Supervisor() == s {
			// Same Supervisor: deliver the confirmation before anything else
			// queued, so the subscriber has recorded the point before any
			// message routed through the new handler is dispatched.
			s.dispatch(conf)
		} else {
			_ = owner.Supervisor().Enqueue(conf)
		}
	case *CommitUnsubscription:
		s.idx.remove(m.Point, m.Handler)
		_ = m.Handler.Owner().Supervisor().Enqueue(message.New(m.Handler.Owner().Address(), &UnsubscriptionConfirmation{Point: m.Point, Handler: m.Handler}))
	case *InitRequest:
		s.handleInitRequest(m)
	case *InitConfirmation:
		s.handleInitConfirmation(m)
	case *StartActor:
		s.handleStartActor(m)
	case *ShutdownTrigger:
		s.handleShutdownTrigger(m)
	case *ShutdownConfirmation:
		s.handleShutdownConfirmation(m)
	case *StateRequest:
		s.handleStateRequest(m)
	case *TimerFired:
		s.handleTimerFired(m)
	default:
		invariantViolation("supervisor received message of unrecognized internal type %T", msg)
	}
}

// dispatch delivers a typed message.Envelope to every Handler currently
// subscribed at its destination for its tag. The handler list is
// snapshotted before invocation, so a handler unsubscribing itself (or
// another) mid-delivery never mutates the slice being iterated.
func (s *Supervisor) dispatch(env *message.Envelope) {
	handlers := s.idx.snapshot(env.Destination())
	for _, h := range handlers {
		if h.Tag() != env.Tag() {
			continue
		}
		h.invoke(env.Payload())
	}
}

func (s *Supervisor) handleInitRequest(m *InitRequest) {
	child, ok := s.actorFor(m.Child)
	if !ok {
		return
	}
	child.markInitializing()
	if err := child.behavior.OnInitialize(child); err != nil {
		s.logger.Errorf("actor: child %s failed to initialize: %v", child.addr, err)
		delete(s.children, m.Child)
		return
	}
	_ = s.Enqueue(&InitConfirmation{Child: m.Child})
}

func (s *Supervisor) handleInitConfirmation(m *InitConfirmation) {
	child, ok := s.actorFor(m.Child)
	if !ok {
		return
	}
	child.markInitialized()
	_ = s.Enqueue(&StartActor{Child: m.Child})
}

func (s *Supervisor) handleStartActor(m *StartActor) {
	child, ok := s.actorFor(m.Child)
	if !ok {
		return
	}
	child.behavior.OnStart(child)
}

func (s *Supervisor) handleShutdownTrigger(m *ShutdownTrigger) {
	child, ok := s.actorFor(m.Child)
	if !ok {
		return
	}
	if child.state == ShuttingDown || child.state == ShutDown {
		return
	}
	if m.Cascading {
		s.logger.Debugf("actor: %s shutting down as part of supervisor cascade", child.addr)
	}
	child.markShuttingDown()
	s.shuttingDown.Add(m.Child)
	child.cancelAllPending()
	child.behavior.OnShutdownStart(child)
	child.unsubscribeAll()
	s.idx.removeOwner(child)
	_ = s.Enqueue(&ShutdownConfirmation{Child: m.Child})
}

func (s *Supervisor) handleShutdownConfirmation(m *ShutdownConfirmation) {
	if m.Child == s.Base.addr {
		s.Base.markShutDown()
		if s.ownsTimer {
			if q, ok := s.timerDriver.(*timer.QuartzDriver); ok {
				q.Stop()
			}
		}
		return
	}
	child, ok := s.children[m.Child]
	if !ok {
		return
	}
	child.markShutDown()
	delete(s.children, m.Child)
	s.shuttingDown.Remove(m.Child)
	if len(s.children) == 0 && s.stopped.Load() {
		// Every child has retired: begin the Supervisor's own shutdown so
		// its subscription index and points end up empty exactly as a
		// child's would.
		_ = s.Enqueue(&ShutdownTrigger{Child: s.Base.addr})
	}
}

func (s *Supervisor) handleStateRequest(m *StateRequest) {
	if m.ReplyTo == nil || m.Target == nil {
		return
	}
	target, ok := s.actorFor(m.Target)
	state := ShutDown
	if ok {
		state = target.state
	}
	_ = m.ReplyTo.Owner().Enqueue(message.New(m.ReplyTo, &StateResponse{State: state}))
}

func (s *Supervisor) handleTimerFired(m *TimerFired) {
	corr, ok := s.timers[m.TimerID]
	if !ok {
		return // stale: already cancelled
	}
	delete(s.timers, m.TimerID)
	corr.owner.resolveTimeout(corr.requestID)
}

// onTimerFired is the callback handed to the timer.Driver; it may run on
// that driver's own goroutine, so it only ever calls Enqueue.
func (s *Supervisor) onTimerFired(timerID string) {
	_ = s.Enqueue(&TimerFired{TimerID: timerID})
}

// armRequestTimeout arms a timer for owner's pending request requestID,
// returning the opaque timer id used to cancel it later.
func (s *Supervisor) armRequestTimeout(owner *Base, requestID string, d time.Duration) string {
	timerID := uuid.NewString()
	s.timers[timerID] = timerCorrelation{owner: owner, requestID: requestID}
	if err := s.timerDriver.StartTimer(timerID, d); err != nil {
		delete(s.timers, timerID)
		s.logger.Warnf("actor: failed to arm request timeout: %v", err)
		return ""
	}
	return timerID
}

// cancelRequestTimeout cancels a previously-armed request timer.
func (s *Supervisor) cancelRequestTimeout(timerID string) {
	if timerID == "" {
		return
	}
	delete(s.timers, timerID)
	s.timerDriver.CancelTimer(timerID)
}
