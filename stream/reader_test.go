package stream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/internal/fixture"
)

// countingReader counts Read calls on the wrapped reader.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func collect(t *testing.T, r *Reader) ([]block.Record, error) {
	t.Helper()

	var records []block.Record
	for rec, err := range r.All(context.Background()) {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func TestReader_MatchesSession(t *testing.T) {
	data := smallPrefix(10)
	want, _, err := pushAll(t, data, len(data))
	require.NoError(t, err)

	for _, size := range []int{1, 100, 3216, DefaultChunkSize} {
		r, err := NewReader(bytes.NewReader(data), WithChunkSize(size))
		require.NoError(t, err)

		got, err := collect(t, r)
		require.NoError(t, err)
		require.Equal(t, want, got, "chunk size %d", size)
		require.True(t, r.Stats().Truncated)
		require.NoError(t, r.Close())
	}
}

func TestReader_OneByteReads(t *testing.T) {
	data := fixture.Small(3)

	r, err := NewReader(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	defer r.Close()

	got, err := collect(t, r)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, int64(len(data)), r.Stats().ConsumedBytes)
}

func TestReader_Backpressure(t *testing.T) {
	src := &countingReader{r: bytes.NewReader(fixture.Small(10))}

	r, err := NewReader(src, WithChunkSize(1000))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next(context.Background())
	require.NoError(t, err)
	// 8 + 3216 bytes are needed for the first record
	require.Equal(t, 4, src.reads)
	require.LessOrEqual(t, r.Stats().BufferedBytes, 1000)
}

func TestReader_StrictTail(t *testing.T) {
	r, err := NewReader(bytes.NewReader(smallPrefix(2)), WithStrictTail(true))
	require.NoError(t, err)
	defer r.Close()

	got, err := collect(t, r)
	require.ErrorIs(t, err, errs.ErrTruncatedTail)
	require.Len(t, got, 2)
}

func TestReader_SourceError(t *testing.T) {
	errBoom := errors.New("boom")
	src := io.MultiReader(bytes.NewReader(fixture.Small(3)), iotest.ErrReader(errBoom))

	r, err := NewReader(src)
	require.NoError(t, err)
	defer r.Close()

	got, err := collect(t, r)
	require.Equal(t, errBoom, err, "source errors are returned as is")
	require.Len(t, got, 3)

	// terminal
	_, err = r.Next(context.Background())
	require.ErrorIs(t, err, errBoom)
}

func TestReader_NoProgress(t *testing.T) {
	r, err := NewReader(iotest.ErrReader(nil))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next(context.Background())
	require.ErrorIs(t, err, io.ErrNoProgress)
}

func TestReader_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, err := NewReader(bytes.NewReader(fixture.Small(5)), WithChunkSize(500))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next(ctx)
	require.NoError(t, err)

	cancel()
	_, err = r.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// halted for good
	_, err = r.Next(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, uint64(1), r.Stats().Blocks)
}

func TestReader_AllBreakHalts(t *testing.T) {
	r, err := NewReader(bytes.NewReader(fixture.Small(5)))
	require.NoError(t, err)
	defer r.Close()

	count := 0
	for _, err := range r.All(context.Background()) {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)

	_, err = r.Next(context.Background())
	require.ErrorIs(t, err, io.EOF)

	for range r.All(context.Background()) {
		t.Fatal("halted reader must not yield")
	}
}

func TestReader_AllYieldsErrorLast(t *testing.T) {
	data := append(fixture.Small(2), make([]byte, 144)...)

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer r.Close()

	var errsSeen []error
	records := 0
	for _, err := range r.All(context.Background()) {
		if err != nil {
			errsSeen = append(errsSeen, err)
			continue
		}
		records++
	}
	require.Equal(t, 2, records)
	require.Len(t, errsSeen, 1)
	require.ErrorIs(t, errsSeen[0], errs.ErrCorruptBlock)
}

func TestReader_ConcurrentSessions(t *testing.T) {
	data := fixture.Small(20)
	want, _, err := pushAll(t, data, len(data))
	require.NoError(t, err)

	const workers = 8
	results := make([][]block.Record, workers)
	failures := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := NewReader(bytes.NewReader(data), WithChunkSize(997*(i+1)))
			if err != nil {
				failures[i] = err
				return
			}
			defer r.Close()

			for rec, err := range r.All(context.Background()) {
				if err != nil {
					failures[i] = err
					return
				}
				results[i] = append(results[i], rec)
			}
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, failures[i])
		require.Equal(t, want, results[i])
	}
}

func BenchmarkReader(b *testing.B) {
	data := fixture.Small(100)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		r, _ := NewReader(bytes.NewReader(data))
		for _, err := range r.All(context.Background()) {
			if err != nil {
				b.Fatal(err)
			}
		}
		_ = r.Close()
	}
}
