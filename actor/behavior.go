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

// Behavior is the sole override point for an actor's init/shutdown
// sequencing. Go has no virtual dispatch through an embedded base struct,
// so a user actor does not subclass Base — it HAS-A *Base and supplies a
// Behavior that the owning Supervisor calls at the right points in the
// lifecycle.
//
// OnInitialize runs while the actor is Initializing: typically where an
// actor subscribes to the messages it cares about. Returning an error here
// aborts initialization; the actor never reaches Operational.
//
// OnStart runs once the Supervisor has sent StartActor; it is responsible
// for transitioning the actor into Operational via Base.markOperational.
//
// OnShutdownStart runs while the actor is ShuttingDown, before
// ShutdownConfirmation is sent to the Supervisor. The Supervisor has already
// cancelled the actor's pending Requests when it runs, and unsubscribes every
// recorded subscription of the actor after it returns.
type Behavior interface {
	OnInitialize(self *Base) error
	OnStart(self *Base)
	OnShutdownStart(self *Base)
}

// DefaultBehavior is a Behavior that immediately confirms initialization
// and immediately marks the actor Operational on start, with no shutdown
// side effects. Embed or use directly for actors with no special lifecycle
// needs.
type DefaultBehavior struct{}

var _ Behavior = DefaultBehavior{}

func (DefaultBehavior) OnInitialize(*Base) error { return nil }

func (DefaultBehavior) OnStart(self *Base) { self.markOperational() }

func (DefaultBehavior) OnShutdownStart(*Base) {}
