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

// Package message defines the typed envelope that every actor-to-actor send
// travels in, plus the process-unique type tag used to dispatch it.
package message

import (
	"reflect"

	"github.com/MerlinXYoung/cpp-rotor/address"
)

// Tag is a process-unique token identifying a payload type. reflect.Type
// values are comparable and unique per type, which is exactly the "map each
// payload type to a process-unique tag at zero runtime cost" contract the
// dispatch core needs — no handwritten registry required.
type Tag = reflect.Type

// TagOf returns the Tag for T. Two calls to TagOf[T]() for the same T always
// return the same value, and TagOf[T]() never equals TagOf[U]() for T != U.
func TagOf[T any]() Tag {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Envelope is the immutable wrapper carrying a payload to a destination
// address. Once constructed by New, an Envelope's payload is never mutated;
// callers that need to "change" a message construct a new Envelope.
type Envelope struct {
	tag         Tag
	destination *address.Address
	payload     any
}

// New constructs an Envelope carrying payload, addressed to dest. The
// envelope's tag is derived from T, so a handler subscribed for T can safely
// type-assert the payload back out once the tag has matched.
func New[T any](dest *address.Address, payload T) *Envelope {
	return &Envelope{
		tag:         TagOf[T](),
		destination: dest,
		payload:     payload,
	}
}

// Tag returns the envelope's payload type tag.
func (e *Envelope) Tag() Tag {
	return e.tag
}

// Destination returns the envelope's destination address.
func (e *Envelope) Destination() *address.Address {
	return e.destination
}

// Payload returns the envelope's payload as an untyped value. Most callers
// should prefer PayloadAs, which also validates the dynamic type.
func (e *Envelope) Payload() any {
	return e.payload
}

// PayloadAs type-asserts the envelope's payload to T. It returns false if the
// payload is not a T — which should never happen for a handler whose
// tag already matched the envelope's Tag, since Tag and the dynamic
// type of payload are established together in New and never diverge.
func PayloadAs[T any](e *Envelope) (T, bool) {
	v, ok := e.payload.(T)
	return v, ok
}
