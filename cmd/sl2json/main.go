// cmd/sl2json/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/arloliu/sonarlog/compress"
	"github.com/arloliu/sonarlog/export"
	"github.com/arloliu/sonarlog/internal/config"
	"github.com/arloliu/sonarlog/internal/hash"
	"github.com/arloliu/sonarlog/stream"
)

const usage = "usage: sl2json [-config file.yaml] [-o out.jsonl] [-limit n] [-bytes n] [-payload mode] [-strict] [-header] [-v] <input|->"

func main() {
	log.SetFlags(0)
	log.SetPrefix("sl2json: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("sl2json", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprintln(fs.Output(), usage); fs.PrintDefaults() }

	cfgPath := fs.String("config", "", "YAML configuration file")
	outPath := fs.String("o", "", "output file (default stdout)")
	limit := fs.Uint64("limit", 0, "stop after n records (0 = all)")
	maxBytes := fs.Int64("bytes", 0, "read at most n input bytes (0 = all)")
	payload := fs.String("payload", "", "payload mode: omit, hash, raw, zstd, s2, lz4")
	strict := fs.Bool("strict", false, "fail on a truncated tail")
	header := fs.Bool("header", false, "write the file header as the first line")
	verbose := fs.Bool("v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}

	// --------------------
	// Load + validate config, flags override
	// --------------------

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		cfg = loaded
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output.Path = *outPath
		case "limit":
			cfg.Input.MaxRecords = *limit
		case "bytes":
			cfg.Input.MaxBytes = *maxBytes
		case "payload":
			mode, err := export.ParsePayloadMode(*payload)
			if err != nil {
				flagErr = err
			}
			cfg.Output.Payload = mode
		case "strict":
			cfg.Input.StrictTail = *strict
		case "header":
			cfg.Output.Header = *header
		}
	})
	if flagErr != nil {
		return flagErr
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	logf := func(string, ...any) {}
	if *verbose {
		logf = log.Printf
	}

	// --------------------
	// Input
	// --------------------

	var in io.Reader = stdin
	inPath := fs.Arg(0)
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	if cfg.Input.MaxBytes > 0 {
		in = io.LimitReader(in, cfg.Input.MaxBytes)
	}

	var (
		rc  io.ReadCloser
		err error
	)
	ct, auto, _ := cfg.Input.StreamCompression()
	if auto {
		rc, ct, err = compress.Open(in)
	} else {
		rc, err = compress.NewReader(in, ct)
	}
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer rc.Close()
	logf("input %s, compression %s", inPath, ct)

	reader, err := stream.NewReader(rc, cfg.StreamOptions()...)
	if err != nil {
		return err
	}
	defer reader.Close()

	// --------------------
	// Output
	// --------------------

	out := stdout
	if cfg.Output.Path != "" && cfg.Output.Path != "-" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	enc, err := export.NewEncoder(bw, export.WithPayload(cfg.Output.Payload))
	if err != nil {
		return err
	}

	headerWritten := false
	for rec, err := range reader.All(ctx) {
		if err != nil {
			_ = bw.Flush()
			return fmt.Errorf("decode failed after %d records: %w", enc.Count(), err)
		}

		if cfg.Output.Header && !headerWritten {
			h, _ := reader.Header()
			if err := enc.WriteHeader(h); err != nil {
				return err
			}
			headerWritten = true
		}

		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	if cfg.Output.Header && !headerWritten {
		// a log without blocks still has a prologue
		if h, ok := reader.Header(); ok {
			if err := enc.WriteHeader(h); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}

	st := reader.Stats()
	if st.Truncated {
		logf("input ends inside a block, partial block dropped")
	}
	log.Printf("%s: %d blocks, %d bytes, %d unknown channels, checksum %s",
		st.Format, st.Blocks, st.ConsumedBytes, st.UnknownChannels, hash.Hex(st.Checksum))

	return nil
}
