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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MerlinXYoung/cpp-rotor/message"
)

type pingPayload struct{ n int }

type greeter struct {
	received []pingPayload
}

func (g *greeter) onPing(p pingPayload) {
	g.received = append(g.received, p)
}

func TestHandlerEqualityIsByBoundMethodNotAllocation(t *testing.T) {
	sup := NewSupervisor()
	base := newBase(sup, DefaultBehavior{}, sup.logger)
	g := &greeter{}

	h1 := NewHandler(base, g.onPing)
	h2 := NewHandler(base, g.onPing)

	require.True(t, h1.Equal(h2))
	require.NotSame(t, h1, h2)
}

func TestHandlerEqualityDiffersByOwner(t *testing.T) {
	sup := NewSupervisor()
	base1 := newBase(sup, DefaultBehavior{}, sup.logger)
	base2 := newBase(sup, DefaultBehavior{}, sup.logger)
	g1 := &greeter{}
	g2 := &greeter{}

	h1 := NewHandler(base1, g1.onPing)
	h2 := NewHandler(base2, g2.onPing)

	require.False(t, h1.Equal(h2))
}

func TestHandlerInvokeDispatchesTypedPayload(t *testing.T) {
	sup := NewSupervisor()
	base := newBase(sup, DefaultBehavior{}, sup.logger)
	g := &greeter{}
	h := NewHandler(base, g.onPing)

	h.invoke(pingPayload{n: 7})
	require.Len(t, g.received, 1)
	require.Equal(t, 7, g.received[0].n)
}

func TestHandlerTagMatchesMessageTag(t *testing.T) {
	sup := NewSupervisor()
	base := newBase(sup, DefaultBehavior{}, sup.logger)
	g := &greeter{}
	h := NewHandler(base, g.onPing)

	require.Equal(t, message.TagOf[pingPayload](), h.Tag())
	require.NotNil(t, h.Tag())
}
