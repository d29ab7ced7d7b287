package sonarlog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/internal/fixture"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func zstdCompress(t *testing.T, data []byte) []byte {
	t.Helper()

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()

	return enc.EncodeAll(data, nil)
}

func TestDecode(t *testing.T) {
	header, records, err := Decode(fixture.Small(5))
	require.NoError(t, err)
	require.Equal(t, format.VersionSL2, header.Format)
	require.Len(t, records, 5)

	_, records, err = Decode(fixture.Small(5)[:100], WithStrictTail(true))
	require.ErrorIs(t, err, errs.ErrTruncatedTail)
	require.Empty(t, records)

	_, _, err = Decode(nil, WithChunkSize(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestDecodeFile(t *testing.T) {
	data := fixture.Small(6)
	want, err := func() ([]Record, error) {
		_, records, err := Decode(data, WithFeetToMeter(true))
		return records, err
	}()
	require.NoError(t, err)

	t.Run("plain", func(t *testing.T) {
		header, records, err := DecodeFile(context.Background(), writeTemp(t, "trip.sl2", data), WithFeetToMeter(true))
		require.NoError(t, err)
		require.Equal(t, format.VersionSL2, header.Format)
		require.Equal(t, want, records)
	})

	t.Run("zstd", func(t *testing.T) {
		path := writeTemp(t, "trip.sl2.zst", zstdCompress(t, data))
		_, records, err := DecodeFile(context.Background(), path, WithFeetToMeter(true))
		require.NoError(t, err)
		require.Equal(t, want, records)
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := DecodeFile(context.Background(), filepath.Join(t.TempDir(), "none.sl2"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, records, err := DecodeFile(ctx, writeTemp(t, "trip.sl2", data))
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, records)
	})
}

func TestOpenReader(t *testing.T) {
	data := fixture.Small(3)

	r, err := OpenReader(bytes.NewReader(zstdCompress(t, data)), WithMaxRecords(2))
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, r.Compression)

	count := 0
	for _, err := range r.All(context.Background()) {
		require.NoError(t, err)
		count++
	}
	require.Equal(t, 2, count)
	require.NoError(t, r.Close())

	_, err = OpenReader(bytes.NewReader(data), WithChunkSize(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestNewSessionAndReader(t *testing.T) {
	sess, err := NewSession()
	require.NoError(t, err)
	require.NoError(t, sess.Close())

	r, err := NewReader(bytes.NewReader(fixture.Small(1)))
	require.NoError(t, err)
	rec, err := r.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(0), rec.FrameIndex)
	require.NoError(t, r.Close())
}
