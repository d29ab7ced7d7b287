package section

import (
	"fmt"

	"github.com/arloliu/sonarlog/endian"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
)

// FileHeader represents the fixed-size prologue at the start of a log file.
type FileHeader struct {
	// Format is the file family decoded from the format word.
	Format format.Version // byte offset 0-1
	// Version is the recorder family revision, carried verbatim.
	Version uint16 // byte offset 2-3
	// BlockSizeHint is the nominal block size advertised by the recorder.
	// Actual block sizes are read from every block header.
	BlockSizeHint uint16 // byte offset 4-5
}

// Parse parses the prologue from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the prologue (must be exactly 8 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 8 bytes, ErrUnsupportedFormat if the magic is unknown
func (h *FileHeader) Parse(data []byte) error {
	if len(data) != FileHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	magic := format.Version(engine.Uint16(data[fileFormatOffset:]))
	if !magic.IsKnown() {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrUnsupportedFormat, uint16(magic))
	}

	h.Format = magic
	h.Version = engine.Uint16(data[fileVersionOffset:])
	h.BlockSizeHint = engine.Uint16(data[fileBlockSizeOffset:])

	return nil
}

// ParseFileHeader parses a FileHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice starting with the prologue (must be at least 8 bytes)
//
// Returns:
//   - FileHeader: Parsed prologue
//   - error: ErrInvalidHeaderSize or ErrUnsupportedFormat
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FileHeader{}
	if err := h.Parse(data[:FileHeaderSize]); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}
