// Package sonarlog decodes SL2 and SL3 sonar logs, the binary recordings written by
// marine sounder and chart plotter units.
//
// A log is an 8-byte prologue followed by a chain of blocks. Every block is a
// fixed 144-byte header carrying one navigation and depth sample (frame index,
// channel, depth, temperature, speed, heading, position, validity flags and a
// timestamp) followed by the raw sonar intensity payload of that ping. Decoding
// yields one Record per block, in file order.
//
// # Core Features
//
//   - Streaming decode over input chunked at arbitrary boundaries
//   - Push (stream.Session) and pull (stream.Reader, iter.Seq2) drivers
//   - Optional unit conversion: feet to meters, radians to degrees, knots to
//     m/s, km/h or mph, and spherical Mercator to latitude/longitude
//   - Transparent zstd, S2/Snappy and LZ4 decompression of archived logs
//   - Graceful handling of logs truncated by power loss
//
// # Basic Usage
//
// Decoding a file:
//
//	header, records, err := sonarlog.DecodeFile(ctx, "trip.sl2",
//	    sonarlog.WithFeetToMeter(true),
//	    sonarlog.WithProjection(true),
//	)
//
// Streaming a large or compressed log:
//
//	r, err := sonarlog.OpenReader(file)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for rec, err := range r.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("frame=%d depth=%.2f\n", rec.FrameIndex, rec.WaterDepth)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream package.
// The block, section and convert packages expose the individual decoding stages
// for callers that need finer control.
package sonarlog

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/compress"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/section"
	"github.com/arloliu/sonarlog/stream"
)

type (
	// Record is one decoded block.
	Record = block.Record
	// FileHeader is the decoded file prologue.
	FileHeader = section.FileHeader
	// Option configures decoding.
	Option = stream.Option
)

// Decoding options, re-exported from the stream package.
var (
	WithConversion  = stream.WithConversion
	WithFeetToMeter = stream.WithFeetToMeter
	WithRadToDeg    = stream.WithRadToDeg
	WithSpeedUnit   = stream.WithSpeedUnit
	WithProjection  = stream.WithProjection
	WithStrictTail  = stream.WithStrictTail
	WithChunkSize   = stream.WithChunkSize
	WithMaxRecords  = stream.WithMaxRecords
)

// NewSession creates a push-driven decoding session.
func NewSession(opts ...Option) (*stream.Session, error) {
	return stream.NewSession(opts...)
}

// NewReader creates a pull-driven decoder over an uncompressed log.
func NewReader(r io.Reader, opts ...Option) (*stream.Reader, error) {
	return stream.NewReader(r, opts...)
}

// LogReader is a stream.Reader over a log that may be compressed.
type LogReader struct {
	*stream.Reader

	// Compression is the detected outer compression of the input.
	Compression format.CompressionType

	rc io.Closer
}

// OpenReader creates a pull-driven decoder over r, detecting zstd, S2/Snappy and
// LZ4 compression from the leading bytes. Closing the LogReader does not close r.
func OpenReader(r io.Reader, opts ...Option) (*LogReader, error) {
	rc, ct, err := compress.Open(r)
	if err != nil {
		return nil, err
	}

	sr, err := stream.NewReader(rc, opts...)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}

	return &LogReader{Reader: sr, Compression: ct, rc: rc}, nil
}

// Close releases the decoder and the decompressor.
func (l *LogReader) Close() error {
	return errors.Join(l.Reader.Close(), l.rc.Close())
}

// DecodeFile decodes every record of the log at path.
//
// Returns:
//   - FileHeader: the decoded prologue (zero if the file is empty)
//   - []Record: all records, in file order
//   - error: the first decoding or I/O error; records decoded before it are still returned
func DecodeFile(ctx context.Context, path string, opts ...Option) (FileHeader, []Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileHeader{}, nil, err
	}
	defer f.Close()

	r, err := OpenReader(f, opts...)
	if err != nil {
		return FileHeader{}, nil, err
	}
	defer r.Close()

	records, err := collect(ctx, r.Reader)
	header, _ := r.Header()

	return header, records, err
}

// Decode decodes a complete in-memory log.
func Decode(data []byte, opts ...Option) (FileHeader, []Record, error) {
	sess, err := stream.NewSession(opts...)
	if err != nil {
		return FileHeader{}, nil, err
	}
	defer sess.Close()

	if _, err := sess.Write(data); err != nil {
		return FileHeader{}, nil, err
	}
	sess.CloseInput()

	var records []Record
	for {
		rec, err := sess.Next()
		if err != nil {
			header, _ := sess.Header()
			if errors.Is(err, io.EOF) {
				return header, records, nil
			}

			return header, records, err
		}
		records = append(records, rec)
	}
}

func collect(ctx context.Context, r *stream.Reader) ([]Record, error) {
	var records []Record
	for rec, err := range r.All(ctx) {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}

	return records, nil
}
