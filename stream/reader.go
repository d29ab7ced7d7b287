package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/section"
)

// maxEmptyReads bounds consecutive zero-byte reads without error, as bufio does.
const maxEmptyReads = 100

// Reader decodes a log pulled from an io.Reader.
//
// The source is read one chunk at a time and only when the decoder cannot make
// progress with what is already buffered, so at most one chunk is pending at
// any time and a slow consumer slows down reading.
//
// Reader is not safe for concurrent use.
type Reader struct {
	src   io.Reader
	sess  *Session
	chunk []byte
}

// NewReader creates a Reader over src. Closing the Reader does not close src.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Reader{
		src:   src,
		sess:  newSession(cfg),
		chunk: make([]byte, cfg.chunkSize),
	}, nil
}

// Next returns the next record.
//
// Returns:
//   - block.Record: the decoded and converted record, valid only when error is nil
//   - error: io.EOF at the end of the log, ctx.Err() if ctx is done, a wrapped
//     source error, or a decoding error. Every error is terminal.
func (r *Reader) Next(ctx context.Context) (block.Record, error) {
	for {
		if err := ctx.Err(); err != nil {
			return block.Record{}, r.halt(err)
		}

		rec, err := r.sess.Next()
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, errs.ErrNeedMore) {
			return block.Record{}, err
		}

		if err := r.fill(); err != nil {
			return block.Record{}, r.halt(err)
		}
	}
}

// fill reads one chunk from the source into the session.
func (r *Reader) fill() error {
	for range maxEmptyReads {
		n, err := r.src.Read(r.chunk)
		if n > 0 {
			if _, werr := r.sess.Write(r.chunk[:n]); werr != nil {
				return werr
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			r.sess.CloseInput()
			return nil
		case err != nil:
			return err
		case n > 0:
			return nil
		}
	}

	return fmt.Errorf("read input: %w", io.ErrNoProgress)
}

// halt ends decoding with err. Partially assembled blocks are discarded.
func (r *Reader) halt(err error) error {
	if r.sess.err == nil {
		r.sess.finish(err)
	}

	return r.sess.err
}

// All returns an iterator over the remaining records.
//
// The sequence ends after the last record; a decoding, source or context error
// is yielded once as the final element. Breaking out of the loop stops decoding
// for good, so the Reader cannot be iterated again.
//
// Example:
//
//	for rec, err := range r.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(rec.FrameIndex, rec.WaterDepth)
//	}
func (r *Reader) All(ctx context.Context) iter.Seq2[block.Record, error] {
	return func(yield func(block.Record, error) bool) {
		for {
			rec, err := r.Next(ctx)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(block.Record{}, err)
				}

				return
			}

			if !yield(rec, nil) {
				_ = r.halt(io.EOF)
				return
			}
		}
	}
}

// Header returns the file prologue and whether it has been decoded yet.
func (r *Reader) Header() (section.FileHeader, bool) {
	return r.sess.Header()
}

// Stats returns the current decoding statistics.
func (r *Reader) Stats() Stats {
	return r.sess.Stats()
}

// Close releases the decoding buffers. It does not close the source.
func (r *Reader) Close() error {
	return r.sess.Close()
}
