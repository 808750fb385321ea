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
	"reflect"
	"runtime"

	"github.com/MerlinXYoung/cpp-rotor/message"
)

// Handler is a bound (owner, typed callback) pair registered against a
// single address and message type. Two Handlers are Equal if they were
// built from the same owner and the same method, regardless of which
// *Handler value wraps them — this lets a freshly-constructed Handler be
// used to Unsubscribe a previously-subscribed one.
type Handler struct {
	tag   message.Tag
	owner *Base
	fn    func(any)
	// funcTag identifies the underlying callback irrespective of the
	// receiver instance it was bound to; stable for the lifetime of the
	// binary.
	funcTag string
}

// NewHandler binds fn, a method of owner accepting a T payload, into a
// Handler subscribable against T-typed messages.
func NewHandler[T any](owner *Base, fn func(T)) *Handler {
	return &Handler{
		tag:   message.TagOf[T](),
		owner: owner,
		fn: func(payload any) {
			typed, ok := payload.(T)
			if !ok {
				invariantViolation("handler for %T invoked with mismatched payload %T", *new(T), payload)
			}
			fn(typed)
		},
		funcTag: funcTag(fn),
	}
}

// funcTag returns a string stable across distinct bound instances of the
// same method value, derived the same way the teacher derives a readable
// actor type name: via runtime.FuncForPC on the function's program counter.
func funcTag(fn any) string {
	return runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
}

// Tag reports the message.Tag this Handler was registered for.
func (h *Handler) Tag() message.Tag { return h.tag }

// Owner reports the actor this Handler is bound to.
func (h *Handler) Owner() *Base { return h.owner }

// Equal reports whether h and other were built from the same owner and
// underlying method, independent of allocation identity.
func (h *Handler) Equal(other *Handler) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.owner == other.owner && h.tag == other.tag && h.funcTag == other.funcTag
}

// invoke dispatches payload to the bound callback.
func (h *Handler) invoke(payload any) {
	h.fn(payload)
}
