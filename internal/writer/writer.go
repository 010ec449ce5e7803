package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	v1 "featuregen/pkg/api/v1"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"go.uber.org/multierr"
)

const bufferSize = 64 * 1024

// Result describes a completed write.
type Result struct {
	Path     string
	Bytes    int64
	Checksum uint64 // xxhash64 of the file contents
	Duration time.Duration
}

type options struct {
	indent bool
}

type Option func(*options)

// WithIndent pretty-prints the JSON document.
func WithIndent() Option {
	return func(o *options) {
		o.indent = true
	}
}

// WriteFile creates or truncates path and writes the JSON encoding of
// features through a buffered writer. Errors name the path. A failed write
// may leave a partial file behind.
func WriteFile(path string, features v1.ClientFeatures, opts ...Option) (res *Result, err error) {
	start := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close %s: %w", path, cerr))
			res = nil
		}
	}()

	n, sum, err := Encode(f, features, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &Result{
		Path:     path,
		Bytes:    n,
		Checksum: sum,
		Duration: time.Since(start),
	}, nil
}

// Encode writes the JSON document to w and returns the byte count and the
// xxhash64 of what was written.
func Encode(w io.Writer, features v1.ClientFeatures, opts ...Option) (int64, uint64, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	bw := bufio.NewWriterSize(w, bufferSize)
	h := xxhash.New()
	cw := &countingWriter{w: io.MultiWriter(bw, h)}

	enc := json.NewEncoder(cw)
	if o.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(features); err != nil {
		return cw.n, 0, err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, 0, err
	}
	return cw.n, h.Sum64(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
