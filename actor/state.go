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

// State is the lifecycle stage of an actor, advanced strictly forward by
// message round-trips with the owning Supervisor. There is no path back to
// an earlier State.
type State int

const (
	// New is the state of a Base immediately after construction, before its
	// Supervisor has handled its InitRequest.
	New State = iota
	// Initializing is entered once the Supervisor has sent InitRequest and
	// is waiting for InitConfirmation.
	Initializing
	// Initialized is entered when the Supervisor receives InitConfirmation
	// and has sent StartActor.
	Initialized
	// Operational is entered by the actor itself, from within its Behavior's
	// OnStart hook, once StartActor has been handled.
	Operational
	// ShuttingDown is entered when a ShutdownTrigger is being processed.
	ShuttingDown
	// ShutDown is terminal. No further state transitions occur.
	ShutDown
)

func (s State) String() string {
	switch s {
	case New:
		return "NEW"
	case Initializing:
		return "INITIALIZING"
	case Initialized:
		return "INITIALIZED"
	case Operational:
		return "OPERATIONAL"
	case ShuttingDown:
		return "SHUTTING_DOWN"
	case ShutDown:
		return "SHUT_DOWN"
	default:
		return "UNKNOWN"
	}
}
