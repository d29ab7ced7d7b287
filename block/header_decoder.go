package block

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/section"
)

// Source serves exact-length reads from buffered input.
//
// TryRead returns exactly n bytes, or errs.ErrNeedMore without consuming anything,
// or io.EOF when input ended with nothing buffered, or errs.ErrTruncatedTail when
// input ended with fewer than n bytes buffered.
type Source interface {
	TryRead(n int) ([]byte, error)
}

// HeaderDecoder decodes the file prologue exactly once.
type HeaderDecoder struct {
	src    Source
	header section.FileHeader
	done   bool
	err    error
}

// NewHeaderDecoder creates a HeaderDecoder reading from src, which must be positioned
// at file offset 0.
func NewHeaderDecoder(src Source) *HeaderDecoder {
	return &HeaderDecoder{src: src}
}

// Decode reads and parses the prologue.
//
// Once the prologue is decoded, or decoding failed for a reason other than
// ErrNeedMore, later calls return the same result without reading.
//
// Returns:
//   - section.FileHeader: the decoded prologue
//   - error: ErrNeedMore until 8 bytes are available, io.EOF for empty input,
//     ErrTruncatedTail for a partial prologue, ErrUnsupportedFormat for an unknown magic
func (d *HeaderDecoder) Decode() (section.FileHeader, error) {
	if d.done {
		return d.header, d.err
	}

	data, err := d.src.TryRead(section.FileHeaderSize)
	if err != nil {
		if errors.Is(err, errs.ErrNeedMore) {
			return section.FileHeader{}, err
		}
		if errors.Is(err, errs.ErrTruncatedTail) {
			err = fmt.Errorf("%w: incomplete file header", err)
		} else if !errors.Is(err, io.EOF) {
			err = fmt.Errorf("read file header: %w", err)
		}

		return d.finish(section.FileHeader{}, err)
	}

	header, err := section.ParseFileHeader(data)

	return d.finish(header, err)
}

func (d *HeaderDecoder) finish(header section.FileHeader, err error) (section.FileHeader, error) {
	d.done = true
	d.header = header
	d.err = err

	return header, err
}

// Done reports whether the prologue was decoded or decoding failed terminally.
func (d *HeaderDecoder) Done() bool {
	return d.done
}
