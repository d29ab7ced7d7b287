package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sonarlog/internal/fixture"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	return &buf
}

func writeInput(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trip.sl2")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func lines(t *testing.T, out string) []map[string]any {
	t.Helper()

	var result []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		result = append(result, m)
	}

	return result
}

func TestRun_Stdout(t *testing.T) {
	logs := captureLog(t)
	path := writeInput(t, fixture.Small(4))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-header", "-payload", "hash", path}, nil, &out))

	got := lines(t, out.String())
	require.Len(t, got, 5)
	require.Equal(t, "sl2", got[0]["formatVersion"])
	require.Equal(t, float64(0), got[1]["frameIndex"])
	require.Len(t, got[1]["payloadHash"], 16)
	require.Contains(t, logs.String(), "sl2: 4 blocks")
}

func TestRun_StdinCompressed(t *testing.T) {
	captureLog(t)

	var in bytes.Buffer
	w := lz4.NewWriter(&in)
	_, err := w.Write(fixture.Small(3))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-v", "-"}, &in, &out))
	require.Len(t, lines(t, out.String()), 3)
}

func TestRun_ConfigAndOverrides(t *testing.T) {
	captureLog(t)

	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.jsonl")
	cfgPath := filepath.Join(dir, "sl2json.yaml")
	cfgYAML := "conversion:\n  feetToMeter: true\ninput:\n  maxRecords: 1\noutput:\n  path: " + outPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o600))

	input := writeInput(t, fixture.Small(5))
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath, "-limit", "2", input}, nil, &bytes.Buffer{}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	got := lines(t, string(data))
	require.Len(t, got, 2)
	require.InDelta(t, 6.622000217437744*0.3048, got[0]["waterDepth"], 1e-9)
}

func TestRun_ByteLimit(t *testing.T) {
	captureLog(t)

	// a byte-range read ending 3 bytes into block 3
	input := writeInput(t, fixture.Small(4))
	n := 8 + 2*fixture.SmallBlockSize + 3

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-bytes", strconv.Itoa(n), input}, nil, &out))
	require.Len(t, lines(t, out.String()), 2)

	err := run(context.Background(), []string{"-bytes", strconv.Itoa(n), "-strict", input}, nil, &bytes.Buffer{})
	require.ErrorContains(t, err, "truncated tail")
}

func TestRun_Errors(t *testing.T) {
	captureLog(t)

	require.Error(t, run(context.Background(), nil, nil, &bytes.Buffer{}))
	require.Error(t, run(context.Background(), []string{"-payload", "gzip", "x.sl2"}, nil, &bytes.Buffer{}))
	require.Error(t, run(context.Background(), []string{filepath.Join(t.TempDir(), "none.sl2")}, nil, &bytes.Buffer{}))

	bad := writeInput(t, []byte{9, 0, 0, 0, 0, 0, 0, 0})
	err := run(context.Background(), []string{bad}, nil, &bytes.Buffer{})
	require.ErrorContains(t, err, "unsupported log format")
}
