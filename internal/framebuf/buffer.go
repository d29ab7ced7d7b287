// Package framebuf implements the cursor-based input accumulator used by the decoders.
//
// A Buffer receives input chunks of arbitrary size through Append and hands out
// exact-length reads through TryRead. A read either succeeds completely and advances
// the cursor, or reports that more input is needed and leaves the buffer untouched.
package framebuf

import (
	"io"

	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/internal/pool"
)

// Buffer accumulates input bytes and serves exact-length reads.
//
// Only the unconsumed suffix of the input is retained: consumed bytes are
// discarded lazily when new input is appended.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	bb       *pool.ByteBuffer
	off      int   // read cursor into bb.B
	consumed int64 // total bytes handed out by TryRead
	closed   bool
}

// New creates a Buffer backed by a pooled byte buffer. Call Release when done.
func New() *Buffer {
	return &Buffer{bb: pool.GetFrameBuffer()}
}

// Append appends a chunk of input.
//
// Returns:
//   - error: ErrInputClosed if CloseInput was called, ErrSessionClosed after Release
func (b *Buffer) Append(p []byte) error {
	if b.bb == nil {
		return errs.ErrSessionClosed
	}
	if b.closed {
		return errs.ErrInputClosed
	}
	if len(p) == 0 {
		return nil
	}

	b.compact(len(p))
	_, _ = b.bb.Write(p)

	return nil
}

// compact drops consumed bytes when that avoids a reallocation or when the consumed
// prefix outweighs the pending data. The second rule keeps compaction amortized O(1) per byte.
func (b *Buffer) compact(incoming int) {
	if b.off == 0 {
		return
	}

	pending := b.bb.Len() - b.off
	if b.off >= pending || b.bb.Cap()-b.bb.Len() < incoming {
		b.bb.TrimFront(b.off)
		b.off = 0
	}
}

// TryRead returns exactly n bytes and advances the cursor.
//
// The returned slice aliases the internal buffer and is only valid until the
// next call to Append or Release.
//
// Returns:
//   - []byte: n bytes of input
//   - error: ErrNeedMore if fewer than n bytes are buffered and input is still open,
//     io.EOF if input is closed and fully consumed, ErrTruncatedTail if input is closed
//     with fewer than n bytes left. In every error case the cursor is unchanged.
func (b *Buffer) TryRead(n int) ([]byte, error) {
	if b.bb == nil {
		return nil, errs.ErrSessionClosed
	}

	avail := b.Len()
	if avail < n {
		if !b.closed {
			return nil, errs.ErrNeedMore
		}
		if avail == 0 {
			return nil, io.EOF
		}

		return nil, errs.ErrTruncatedTail
	}

	out := b.bb.B[b.off : b.off+n : b.off+n]
	b.off += n
	b.consumed += int64(n)

	return out, nil
}

// Len returns the number of buffered bytes not yet consumed.
func (b *Buffer) Len() int {
	if b.bb == nil {
		return 0
	}

	return b.bb.Len() - b.off
}

// Consumed returns the total number of bytes handed out by TryRead.
func (b *Buffer) Consumed() int64 {
	return b.consumed
}

// CloseInput marks the end of input. Subsequent reads that cannot be satisfied
// report io.EOF or ErrTruncatedTail instead of ErrNeedMore.
func (b *Buffer) CloseInput() {
	b.closed = true
}

// Closed reports whether CloseInput was called.
func (b *Buffer) Closed() bool {
	return b.closed
}

// Release returns the backing storage to the pool. The Buffer must not be used afterwards.
func (b *Buffer) Release() {
	if b.bb == nil {
		return
	}

	pool.PutFrameBuffer(b.bb)
	b.bb = nil
	b.off = 0
}
