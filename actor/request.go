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
	"time"

	"github.com/google/uuid"

	"github.com/MerlinXYoung/cpp-rotor/address"
	"github.com/MerlinXYoung/cpp-rotor/message"
)

// pendingRequest tracks one in-flight Request awaiting either a Reply, a
// timeout, or cancellation from shutdown.
type pendingRequest struct {
	resolve func(payload any, err error)
	timerID string
}

// Request sends payload to dest and, when d > 0, arms a timeout of d. At
// most one of onReply or onErr fires: onReply if a matching Reply arrives
// in time, onErr with ErrRequestTimeout if d elapses first, or with
// ErrRequestCancelled if self shuts down while the request is pending. With
// d <= 0 no timer is armed, so neither fires unless a Reply arrives or self
// shuts down. A Reply that arrives after either of those has already fired
// is discarded as stale.
func Request[Req, Resp any](self *Base, dest *address.Address, payload Req, d time.Duration, onReply func(Resp), onErr func(error)) error {
	if dest == nil {
		return ErrNilAddress
	}
	self.ensureResponseSubscription()

	id := uuid.NewString()
	self.pending[id] = &pendingRequest{
		resolve: func(raw any, err error) {
			if err != nil {
				onErr(err)
				return
			}
			resp, ok := raw.(Resp)
			if !ok {
				onErr(wrapf(ErrUnknownAddress, "reply payload %T does not match expected %T", raw, *new(Resp)))
				return
			}
			onReply(resp)
		},
	}

	env := &requestEnvelope[Req]{RequestID: id, ReplyTo: self.addr, Payload: payload}
	if err := dest.Owner().Enqueue(message.New(dest, env)); err != nil {
		delete(self.pending, id)
		return err
	}

	if d > 0 {
		self.pending[id].timerID = self.supervisor.armRequestTimeout(self, id, d)
	}
	return nil
}

// HandleRequest registers self to answer requests of type Req sent to its
// own address, replying with either a Resp or an error back to the
// requester. Multiple HandleRequest calls on the same Base, for distinct
// Req types, may coexist: requestEnvelope[Req] carries a distinct
// message.Tag per Req, so the subscription index routes each request to
// the one registration whose Req actually matches, without any of them
// ever seeing the others' payloads.
func HandleRequest[Req, Resp any](self *Base, fn func(Req) (Resp, error)) {
	handler := func(env *requestEnvelope[Req]) {
		resp, err := fn(env.Payload)
		reply := &responseEnvelope{RequestID: env.RequestID, Payload: resp, Err: err}
		if sendErr := env.ReplyTo.Owner().Enqueue(message.New(env.ReplyTo, reply)); sendErr != nil {
			self.logger.Warnf("actor: failed to deliver reply for request %s: %v", env.RequestID, sendErr)
		}
	}
	h := NewHandler(self, handler)
	// Local: self always owns its own address, so this never crosses a
	// Supervisor boundary and can be committed synchronously by the
	// Supervisor draining its own mailbox.
	_ = self.addr.Owner().Enqueue(&CommitSubscription{Point: self.addr, Handler: h})
}

// ensureResponseSubscription subscribes self, once, to receive
// responseEnvelope deliveries at its own address, resolving pending
// Requests by RequestID as replies arrive.
func (b *Base) ensureResponseSubscription() {
	if b.responseSubscribed {
		return
	}
	b.responseSubscribed = true
	handler := func(env *responseEnvelope) {
		pr, ok := b.pending[env.RequestID]
		if !ok {
			return // stale: already resolved by timeout or cancellation
		}
		delete(b.pending, env.RequestID)
		if pr.timerID != "" {
			b.supervisor.cancelRequestTimeout(pr.timerID)
		}
		pr.resolve(env.Payload, env.Err)
	}
	h := NewHandler(b, handler)
	_ = b.addr.Owner().Enqueue(&CommitSubscription{Point: b.addr, Handler: h})
}

// resolveTimeout fires when this actor's armed timer for requestID elapses
// without a Reply having arrived first.
func (b *Base) resolveTimeout(requestID string) {
	pr, ok := b.pending[requestID]
	if !ok {
		return
	}
	delete(b.pending, requestID)
	pr.resolve(nil, ErrRequestTimeout)
}

// cancelAllPending resolves every still-pending Request as cancelled,
// called once when the actor enters ShuttingDown.
func (b *Base) cancelAllPending() {
	for id, pr := range b.pending {
		delete(b.pending, id)
		if pr.timerID != "" {
			b.supervisor.cancelRequestTimeout(pr.timerID)
		}
		pr.resolve(nil, ErrRequestCancelled)
	}
}
