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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMailboxFIFOSingleProducer(t *testing.T) {
	m := NewDefaultMailbox()
	require.True(t, m.IsEmpty())

	for i := 0; i < 5; i++ {
		require.NoError(t, m.Enqueue(i))
	}
	require.False(t, m.IsEmpty())
	require.Equal(t, int64(5), m.Len())

	for i := 0; i < 5; i++ {
		require.Equal(t, i, m.Dequeue())
	}
	require.True(t, m.IsEmpty())
	require.Nil(t, m.Dequeue())
}

func TestDefaultMailboxConcurrentProducers(t *testing.T) {
	m := NewDefaultMailbox()
	const producers = 8
	const perProducer = 200

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				require.NoError(t, m.Enqueue(p*perProducer+i))
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for {
		v := m.Dequeue()
		if v == nil {
			break
		}
		seen[v.(int)] = true
	}
	require.Len(t, seen, producers*perProducer)
}

func TestBoundedMailboxRejectsOverCapacity(t *testing.T) {
	m := NewBoundedMailbox(2)
	require.NoError(t, m.Enqueue(1))
	require.NoError(t, m.Enqueue(2))
	require.ErrorIs(t, m.Enqueue(3), ErrMailboxFull)

	require.Equal(t, 1, m.Dequeue())
	require.NoError(t, m.Enqueue(3))
}

func TestBoundedMailboxDispose(t *testing.T) {
	m := NewBoundedMailbox(4)
	require.NoError(t, m.Enqueue(1))
	require.NoError(t, m.Enqueue(2))
	m.Dispose()
	require.True(t, m.IsEmpty())
}
