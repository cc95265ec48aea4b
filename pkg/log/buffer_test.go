package log_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/log"
)

func TestCircularBufferWrite(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(3)

	n, err := cb.Write([]byte("one\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = cb.Write([]byte("two\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, cb.Size())
	assert.False(t, cb.IsFull())
}

func TestCircularBufferEviction(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)

	for _, s := range []string{"a", "b", "c"} {
		_, err := cb.Write([]byte(s))
		require.NoError(t, err)
	}

	assert.True(t, cb.IsFull())

	entries := cb.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", string(entries[0]))
	assert.Equal(t, "c", string(entries[1]))
}

func TestCircularBufferEmptyWrite(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)

	n, err := cb.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, cb.Size())
	assert.Nil(t, cb.Entries())
}

func TestCircularBufferWriteTo(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(4)
	for _, s := range []string{"x\n", "y\n"} {
		_, err := cb.Write([]byte(s))
		require.NoError(t, err)
	}

	var out bytes.Buffer

	n, err := cb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "x\ny\n", out.String())
}

func TestCircularBufferClear(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(2)
	_, err := cb.Write([]byte("a"))
	require.NoError(t, err)

	cb.Clear()

	assert.Zero(t, cb.Size())
	assert.False(t, cb.IsFull())
}

func TestCircularBufferConcurrentWrites(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(16)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				_, _ = cb.Write([]byte("entry"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, cb.Size())
}

func TestCircularBufferDefaultCapacity(t *testing.T) {
	t.Parallel()

	cb := log.NewCircularBuffer(0)
	assert.Equal(t, 100, cb.Capacity())
}
