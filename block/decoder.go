package block

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/section"
)

// State is a state of the block decoder.
type State uint8

const (
	StateAwaitingHeader  State = iota // waiting for 144 header bytes
	StateHaveHeader                   // header parsed and validated
	StateAwaitingPayload              // waiting for blockSize-144 payload bytes
	StateHaveRecord                   // header and payload assembled
	StateEndOfStream                  // input exhausted, terminal
	StateFailed                       // corrupt input, terminal
)

func (s State) String() string {
	switch s {
	case StateAwaitingHeader:
		return "AwaitingHeader"
	case StateHaveHeader:
		return "HaveHeader"
	case StateAwaitingPayload:
		return "AwaitingPayload"
	case StateHaveRecord:
		return "HaveRecord"
	case StateEndOfStream:
		return "EndOfStream"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Decoder decodes the chain of blocks that follows the file prologue.
//
// Decoder is not safe for concurrent use.
type Decoder struct {
	src     Source
	state   State
	header  section.BlockHeader
	payload []byte
	offset  int64 // file offset of the block being decoded
	blocks  uint64
	err     error
}

// NewDecoder creates a Decoder reading from src.
//
// Parameters:
//   - src: input positioned at the first block
//   - offset: file offset of the first block, used in error messages and Offset
func NewDecoder(src Source, offset int64) *Decoder {
	return &Decoder{
		src:    src,
		state:  StateAwaitingHeader,
		offset: offset,
	}
}

// Next decodes the next block.
//
// Returns:
//   - Record: the decoded block, valid only when error is nil
//   - error: ErrNeedMore when the source has to be refilled before decoding can continue,
//     io.EOF at a clean end of input, ErrTruncatedTail when input ends inside a block,
//     ErrCorruptBlock for an invalid block size. ErrCorruptBlock is sticky; after
//     io.EOF or ErrTruncatedTail every call returns io.EOF.
func (d *Decoder) Next() (Record, error) {
	for {
		switch d.state {
		case StateAwaitingHeader:
			data, err := d.src.TryRead(section.BlockHeaderSize)
			if err != nil {
				return Record{}, d.inputError(err, "block header")
			}

			if err := d.header.Parse(data); err != nil {
				return Record{}, d.fail(err)
			}
			if err := d.header.Validate(); err != nil {
				return Record{}, d.fail(fmt.Errorf("%w (block %d at offset %d)", err, d.blocks, d.offset))
			}
			d.state = StateHaveHeader

		case StateHaveHeader:
			if d.header.PayloadSize() > 0 {
				d.state = StateAwaitingPayload
			} else {
				d.payload = nil
				d.state = StateHaveRecord
			}

		case StateAwaitingPayload:
			data, err := d.src.TryRead(d.header.PayloadSize())
			if err != nil {
				if errors.Is(err, io.EOF) {
					// the header promised a payload
					err = errs.ErrTruncatedTail
				}

				return Record{}, d.inputError(err, "block payload")
			}

			d.payload = make([]byte, len(data))
			copy(d.payload, data)
			d.state = StateHaveRecord

		case StateHaveRecord:
			rec := NewRecord(&d.header, d.payload)
			d.payload = nil
			d.offset += int64(d.header.BlockSize)
			d.blocks++
			d.state = StateAwaitingHeader

			return rec, nil

		case StateEndOfStream:
			return Record{}, io.EOF

		default:
			return Record{}, d.err
		}
	}
}

// inputError maps a failed read to the decoder's result.
func (d *Decoder) inputError(err error, what string) error {
	switch {
	case errors.Is(err, errs.ErrNeedMore):
		return err
	case errors.Is(err, io.EOF):
		d.state = StateEndOfStream
		return io.EOF
	case errors.Is(err, errs.ErrTruncatedTail):
		// discard the partially assembled block
		d.payload = nil
		d.state = StateEndOfStream
		return fmt.Errorf("%w: incomplete %s (block %d at offset %d)", errs.ErrTruncatedTail, what, d.blocks, d.offset)
	default:
		return d.fail(err)
	}
}

func (d *Decoder) fail(err error) error {
	d.state = StateFailed
	d.err = err

	return err
}

// State returns the current state.
func (d *Decoder) State() State {
	return d.state
}

// Offset returns the file offset of the block being decoded, which after a
// successful Next is the offset of the following block.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Blocks returns the number of blocks decoded so far.
func (d *Decoder) Blocks() uint64 {
	return d.blocks
}

// Err returns the terminal error of a failed decoder, or nil.
func (d *Decoder) Err() error {
	return d.err
}
