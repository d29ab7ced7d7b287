package stream

import (
	"errors"
	"io"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/internal/framebuf"
	"github.com/arloliu/sonarlog/internal/hash"
	"github.com/arloliu/sonarlog/section"
)

// Stats summarizes the progress of a decoding session.
type Stats struct {
	Format          format.Version // decoded format, VersionUnknown before the prologue
	HeaderBytes     int            // prologue size once decoded, else 0
	Blocks          uint64         // records emitted
	ConsumedBytes   int64          // prologue plus the sizes of all emitted blocks
	BufferedBytes   int            // input bytes received but not yet consumed
	UnknownChannels uint64         // records with a channel code outside the known set
	Truncated       bool           // input ended inside the prologue or a block
	Checksum        uint64         // xxHash64 of every input byte the decoders read
}

// digestSource feeds every successful read into the stream digest.
type digestSource struct {
	buf    *framebuf.Buffer
	digest *hash.Stream
}

func (s *digestSource) TryRead(n int) ([]byte, error) {
	data, err := s.buf.TryRead(n)
	if err == nil {
		s.digest.Write(data)
	}

	return data, err
}

// Session decodes a log pushed to it in chunks of any size.
//
// Input is appended with Write and records are pulled with Next, which returns
// errs.ErrNeedMore whenever the buffered input does not hold the next complete
// prologue or block. Call CloseInput once the source is exhausted so Next can
// tell a clean end from a truncated one.
//
// Session is not safe for concurrent use. Independent sessions may run in
// parallel.
type Session struct {
	cfg       *config
	buf       *framebuf.Buffer
	src       *digestSource
	headerDec *block.HeaderDecoder
	blockDec  *block.Decoder

	header       section.FileHeader
	headerParsed bool

	records         uint64
	unknownChannels uint64
	truncated       bool
	closed          bool
	err             error // terminal result, io.EOF after a clean end
}

// NewSession creates a Session.
//
// Returns:
//   - *Session: a session awaiting the file prologue
//   - error: an ErrInvalidOption error wrapped with the option name
func NewSession(opts ...Option) (*Session, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newSession(cfg), nil
}

func newSession(cfg *config) *Session {
	buf := framebuf.New()
	src := &digestSource{buf: buf, digest: hash.NewStream()}

	return &Session{
		cfg:       cfg,
		buf:       buf,
		src:       src,
		headerDec: block.NewHeaderDecoder(src),
	}
}

// Write appends a chunk of input. The chunk is copied, so the caller may reuse it.
//
// Write implements io.Writer, so a Session can be the destination of io.Copy.
func (s *Session) Write(p []byte) (int, error) {
	if err := s.buf.Append(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// CloseInput signals that no more input will be written.
func (s *Session) CloseInput() {
	s.buf.CloseInput()
}

// Next returns the next record.
//
// Returns:
//   - block.Record: the decoded and converted record, valid only when error is nil
//   - error: ErrNeedMore when more input is required, io.EOF at the end of the log,
//     or a terminal error. Terminal results repeat on every later call.
func (s *Session) Next() (block.Record, error) {
	if s.err != nil {
		return block.Record{}, s.err
	}
	if s.cfg.maxRecords > 0 && s.records >= s.cfg.maxRecords {
		return block.Record{}, s.finish(io.EOF)
	}

	if !s.headerParsed {
		header, err := s.headerDec.Decode()
		if err != nil {
			return block.Record{}, s.inputError(err)
		}
		s.header = header
		s.headerParsed = true
		s.blockDec = block.NewDecoder(s.src, section.FileHeaderSize)
	}

	rec, err := s.blockDec.Next()
	if err != nil {
		return block.Record{}, s.inputError(err)
	}

	s.records++
	if !rec.Channel.IsKnown() {
		s.unknownChannels++
	}
	if !s.cfg.conversion.IsZero() {
		rec = s.cfg.conversion.Apply(rec)
	}

	return rec, nil
}

// inputError applies the tail policy to a decoder error.
func (s *Session) inputError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNeedMore):
		return err
	case errors.Is(err, errs.ErrTruncatedTail):
		s.truncated = true
		if s.cfg.strictTail {
			return s.finish(err)
		}

		return s.finish(io.EOF)
	default:
		return s.finish(err)
	}
}

func (s *Session) finish(err error) error {
	s.err = err

	return err
}

// Header returns the file prologue and whether it has been decoded yet.
func (s *Session) Header() (section.FileHeader, bool) {
	return s.header, s.headerParsed
}

// Stats returns the current decoding statistics.
func (s *Session) Stats() Stats {
	st := Stats{
		Blocks:          s.records,
		ConsumedBytes:   s.consumedBytes(),
		BufferedBytes:   s.buf.Len(),
		UnknownChannels: s.unknownChannels,
		Truncated:       s.truncated,
		Checksum:        s.src.digest.Sum64(),
	}
	if s.headerParsed {
		st.Format = s.header.Format
		st.HeaderBytes = section.FileHeaderSize
	}

	return st
}

func (s *Session) consumedBytes() int64 {
	if s.blockDec != nil {
		return s.blockDec.Offset()
	}

	return 0
}

// Close releases the session buffer. Stats remain available; every other
// method returns ErrSessionClosed.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	s.buf.Release()
	s.err = errs.ErrSessionClosed

	return nil
}
