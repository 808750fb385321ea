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

package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MerlinXYoung/cpp-rotor/address"
)

type fakeOwner struct{ locality string }

func (f *fakeOwner) Enqueue(any) error   { return nil }
func (f *fakeOwner) Locality() string    { return f.locality }

func TestAddressIdentityEquality(t *testing.T) {
	owner := &fakeOwner{locality: "loop-a"}
	a1 := address.New(owner)
	a2 := address.New(owner)

	require.True(t, a1.Equal(a1))
	require.False(t, a1.Equal(a2))
	require.NotSame(t, a1, a2)
}

func TestAddressOwner(t *testing.T) {
	owner := &fakeOwner{locality: "loop-a"}
	a := address.New(owner)
	require.Equal(t, owner, a.Owner())
	require.Equal(t, "loop-a", a.Owner().Locality())
}

func TestNilAddressIsSafe(t *testing.T) {
	var a *address.Address
	require.Nil(t, a.Owner())
	require.Contains(t, a.String(), "nil")
}

func TestAddressStringHasAddrPrefix(t *testing.T) {
	owner := &fakeOwner{locality: "loop-a"}
	a := address.New(owner)
	require.Contains(t, a.String(), "addr://")
}
