// Package block decodes the file prologue and the chain of blocks of an SL2/SL3 log.
//
// Decoding is incremental: both decoders read from a Source that serves exact-length
// reads and reports errs.ErrNeedMore when not enough input is buffered. A decoder that
// receives ErrNeedMore returns it to the caller and resumes from the same point on the
// next call, so input may arrive in chunks of any size.
//
// # Block State Machine
//
//	AwaitingHeader ──144 bytes──▶ HaveHeader ──blockSize>144──▶ AwaitingPayload
//	      ▲                           │                               │
//	      │                     blockSize==144                 payload bytes
//	      │                           ▼                               │
//	      └──────── record ◀──── HaveRecord ◀─────────────────────────┘
//
// Terminal states are EndOfStream (input exhausted, io.EOF) and Failed (corrupt block).
// A corrupt block size is fatal because blocks can only be located through the size
// of their predecessor.
//
// # Ownership
//
// Every Record owns its payload slice; decoders keep no reference to emitted records.
package block
