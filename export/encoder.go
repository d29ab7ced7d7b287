// Package export writes decoded sonar records as JSON lines.
//
// Each record becomes one JSON object on its own line, keyed like block.Record
// (frameIndex, channel, waterDepth, flags and so on). The opaque sonar payload
// is left out unless a PayloadMode asks for it, either as an xxHash64
// fingerprint or base64 encoded, optionally compressed with one of the
// compress codecs.
package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/compress"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/internal/hash"
	"github.com/arloliu/sonarlog/internal/options"
	"github.com/arloliu/sonarlog/section"
)

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithPayload sets the payload mode. The default is PayloadOmit.
func WithPayload(mode PayloadMode) Option {
	return options.New("WithPayload", func(e *Encoder) error {
		if !mode.IsValid() {
			return fmt.Errorf("unknown payload mode %d", mode)
		}
		e.mode = mode

		return nil
	})
}

// Encoder writes records to an io.Writer, one JSON object per line.
//
// Encoder is not safe for concurrent use.
type Encoder struct {
	enc   *json.Encoder
	mode  PayloadMode
	codec compress.Codec
	count uint64
}

type headerLine struct {
	FormatVersion format.Version `json:"formatVersion"`
	Version       uint16         `json:"version"`
	BlockSizeHint uint16         `json:"blockSizeHint"`
}

type recordLine struct {
	block.Record

	PayloadHash     string `json:"payloadHash,omitempty"`
	PayloadData     string `json:"payload,omitempty"`
	PayloadEncoding string `json:"payloadEncoding,omitempty"`
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	e := &Encoder{enc: json.NewEncoder(w)}
	e.enc.SetEscapeHTML(false)

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	if ct, ok := e.mode.compression(); ok {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return nil, err
		}
		e.codec = codec
	}

	return e, nil
}

// WriteHeader writes the file prologue as a line of its own.
func (e *Encoder) WriteHeader(h section.FileHeader) error {
	return e.enc.Encode(headerLine{
		FormatVersion: h.Format,
		Version:       h.Version,
		BlockSizeHint: h.BlockSizeHint,
	})
}

// Encode writes one record.
func (e *Encoder) Encode(rec block.Record) error {
	line := recordLine{Record: rec}

	switch {
	case e.mode == PayloadHash:
		line.PayloadHash = hash.Hex(hash.Payload(rec.Payload))
	case e.codec != nil && len(rec.Payload) > 0:
		data, err := e.codec.Compress(rec.Payload)
		if err != nil {
			return fmt.Errorf("compress payload of frame %d: %w", rec.FrameIndex, err)
		}
		line.PayloadData = base64.StdEncoding.EncodeToString(data)
		line.PayloadEncoding = e.mode.String()
	}

	if err := e.enc.Encode(line); err != nil {
		return fmt.Errorf("encode frame %d: %w", rec.FrameIndex, err)
	}
	e.count++

	return nil
}

// Count returns the number of records written.
func (e *Encoder) Count() uint64 {
	return e.count
}

// DecodePayload reverses the payload encoding of a JSON line.
//
// Parameters:
//   - data: the base64 "payload" value
//   - encoding: the "payloadEncoding" value
func DecodePayload(data, encoding string) ([]byte, error) {
	mode, err := ParsePayloadMode(encoding)
	if err != nil {
		return nil, err
	}
	ct, ok := mode.compression()
	if !ok {
		return nil, fmt.Errorf("payload encoding %q carries no payload", encoding)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(raw)
}
