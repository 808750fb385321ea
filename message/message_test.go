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

package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MerlinXYoung/cpp-rotor/address"
	"github.com/MerlinXYoung/cpp-rotor/message"
)

type ping struct{ n int }
type pong struct{ n int }

type fakeOwner struct{}

func (fakeOwner) Enqueue(any) error { return nil }
func (fakeOwner) Locality() string  { return "local" }

func TestTagOfIsStablePerType(t *testing.T) {
	require.Equal(t, message.TagOf[ping](), message.TagOf[ping]())
	require.NotEqual(t, message.TagOf[ping](), message.TagOf[pong]())
}

func TestEnvelopeRoundTrip(t *testing.T) {
	addr := address.New(fakeOwner{})
	env := message.New(addr, ping{n: 7})

	require.Equal(t, message.TagOf[ping](), env.Tag())
	require.True(t, addr.Equal(env.Destination()))

	got, ok := message.PayloadAs[ping](env)
	require.True(t, ok)
	require.Equal(t, 7, got.n)

	_, ok = message.PayloadAs[pong](env)
	require.False(t, ok)
}

func TestPayloadUntyped(t *testing.T) {
	addr := address.New(fakeOwner{})
	env := message.New(addr, pong{n: 3})
	require.Equal(t, pong{n: 3}, env.Payload())
}
