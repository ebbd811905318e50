// Command huffman compresses a file into a self-describing Huffman frame,
// decodes the frame back, and checks that the round trip is exact.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/fusedbloxxer/huffman-compression"
	"github.com/fusedbloxxer/huffman-compression/entropy"
	"github.com/fusedbloxxer/huffman-compression/internal/logger"
)

type config struct {
	in         string
	out        string
	decoded    string
	specifiers []int
	buckets    int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logg := logger.New(stderr)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logg.Errorf("%v", err)
		}
		return 1
	}

	if err := compress(cfg, stdout, logg); err != nil {
		logg.Errorf("%v", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	var specifiers string

	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input file (required)")
	fs.StringVar(&cfg.out, "out", "", "frame output file (default <in>.huf)")
	fs.StringVar(&cfg.decoded, "decoded", "", "decoded output file (default <in>.out)")
	fs.StringVar(&specifiers, "specifiers", "1,2,3", "comma-separated window widths for the entropy report")
	fs.IntVar(&cfg.buckets, "buckets", huffman.DefaultBuckets, "hash table buckets for the entropy report")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.in == "" {
		return cfg, errors.New("missing required flag -in")
	}
	if cfg.out == "" {
		cfg.out = cfg.in + ".huf"
	}
	if cfg.decoded == "" {
		cfg.decoded = cfg.in + ".out"
	}
	if cfg.buckets <= 0 {
		return cfg, fmt.Errorf("invalid -buckets %d", cfg.buckets)
	}

	for _, field := range strings.Split(specifiers, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid specifier %q", field)
		}
		cfg.specifiers = append(cfg.specifiers, n)
	}
	return cfg, nil
}

func compress(cfg config, stdout io.Writer, logg logger.Logger) error {
	p := message.NewPrinter(language.English)

	data, err := os.ReadFile(cfg.in)
	if err != nil {
		return err
	}
	logg.Infof("read %s: %d bytes", cfg.in, len(data))

	report(p, stdout, data, cfg)

	frame, err := huffman.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", cfg.in, err)
	}
	if err := os.WriteFile(cfg.out, frame, 0o644); err != nil {
		return err
	}
	logg.Infof("wrote %s: %d bytes", cfg.out, len(frame))

	stored, err := os.ReadFile(cfg.out)
	if err != nil {
		return err
	}
	decoded, err := huffman.Unmarshal(stored)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.out, err)
	}
	if err := os.WriteFile(cfg.decoded, decoded, 0o644); err != nil {
		return err
	}
	logg.Infof("wrote %s: %d bytes", cfg.decoded, len(decoded))

	if !bytes.Equal(data, decoded) {
		return fmt.Errorf("round trip mismatch: %s and %s differ", cfg.in, cfg.decoded)
	}

	p.Fprintf(stdout, "original: %d bytes\n", len(data))
	p.Fprintf(stdout, "frame:    %d bytes\n", len(frame))
	if len(data) != 0 {
		p.Fprintf(stdout, "ratio:    %.3f\n", float64(len(frame))/float64(len(data)))
	}
	return nil
}

// report prints entropy figures for data.  Widths that do not fit the input
// are skipped.
func report(p *message.Printer, w io.Writer, data []byte, cfg config) {
	for _, specifier := range cfg.specifiers {
		h, err := entropy.Sequences(data, specifier, cfg.buckets)
		if err != nil {
			continue
		}
		p.Fprintf(w, "entropy of %d-byte sequences: %.6f bits\n", specifier, h)
	}
	if h, err := entropy.Words(data, cfg.buckets); err == nil {
		p.Fprintf(w, "entropy of words: %.6f bits\n", h)
	}

	enc, err := huffman.Encode(data, huffman.WithBuckets(cfg.buckets))
	if err != nil {
		return
	}
	defer enc.Destroy()
	p.Fprintf(w, "huffman tree entropy: %.6f bits, average code length: %.6f bits\n",
		entropy.Tree(enc.Tree), entropy.AverageCodeLength(enc.Tree))
	p.Fprintf(w, "raw bitstream: %d bits in %d bytes, %d symbols\n", enc.Bits, len(enc.Bytes), enc.Table.Len())
}
