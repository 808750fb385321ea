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
	"github.com/MerlinXYoung/cpp-rotor/log"
	"github.com/MerlinXYoung/cpp-rotor/timer"
)

// SupervisorOption configures a Supervisor at construction.
type SupervisorOption func(*Supervisor)

// WithMailbox overrides the default unbounded DefaultMailbox.
func WithMailbox(m Mailbox) SupervisorOption {
	return func(s *Supervisor) { s.mailbox = m }
}

// WithLogger sets the Supervisor's logger, inherited by every child it
// spawns.
func WithLogger(l log.Logger) SupervisorOption {
	return func(s *Supervisor) { s.logger = l }
}

// WithLocality overrides the Supervisor's locality token. Two Supervisors
// constructed with the same locality are asserting to the runtime that
// they are never run concurrently — typically because the embedder drives
// both Process loops from the very same goroutine, one after the other.
func WithLocality(locality string) SupervisorOption {
	return func(s *Supervisor) { s.locality = locality }
}

// WithTimerDriver overrides the default go-quartz-backed timer.Driver. The
// caller retains ownership: Supervisor.Shutdown will not stop a
// caller-supplied driver.
func WithTimerDriver(d timer.Driver) SupervisorOption {
	return func(s *Supervisor) {
		s.timerDriver = d
		s.ownsTimer = false
	}
}
