package askline

import (
	"bytes"
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapSource fails the test if two ask loops ever read concurrently.
type overlapSource struct {
	active int32
	peak   int32
	reads  int32
}

func (s *overlapSource) ReadLine() (string, error) {
	n := atomic.AddInt32(&s.active, 1)
	for {
		peak := atomic.LoadInt32(&s.peak)
		if n <= peak || atomic.CompareAndSwapInt32(&s.peak, peak, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&s.active, -1)
	atomic.AddInt32(&s.reads, 1)
	return "7\n", nil
}

func TestSerializedIO_MutualExclusion(t *testing.T) {
	source := &overlapSource{}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine := MustNew(
				WithSource(source),
				WithWriter(io.Discard),
				WithSerializedIO(),
			)
			value, err := Ask[int](engine, "N: ")
			assert.NoError(t, err)
			assert.Equal(t, 7, value)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.peak),
		"serialized engines never read concurrently")
	assert.Equal(t, int32(10), atomic.LoadInt32(&source.reads))
}

func TestSerializedIO_HeldAcrossRetries(t *testing.T) {
	// A serialized loop holds the console lock through its retries, so a
	// second serialized ask cannot interleave mid-conversation.
	first, _, _ := testEngine(t, "bad\nworse\n5\n", WithSerializedIO())
	out := &bytes.Buffer{}
	second := MustNew(WithReader(bytes.NewReader(nil)), WithWriter(out), WithSerializedIO())

	value, err := Ask[int](first, "N: ")
	require.NoError(t, err)
	assert.Equal(t, 5, value)

	// lock released after completion; the next serialized ask proceeds
	_, err = Ask[int](second, "M: ")
	require.Error(t, err, "empty stream on the second engine")
	assert.True(t, IsStreamFatal(err))
	assert.Equal(t, "M: ", out.String())
}

func TestSerializedIO_SequenceCompletes(t *testing.T) {
	engine, _, _ := testEngine(t, "1\n2\n", WithSerializedIO())

	var a, b int
	err := NewSequence(engine).
		Bind(&a, "a: ").
		Bind(&b, "b: ").
		Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}
