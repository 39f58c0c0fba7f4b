// gzip.go: GZIP/DEFLATE transformation
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"io"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/agilira/octo"
)

// bufTarget adapts an *octo.Buffer, swapped in before each call, into
// the io.Writer gzip.Writer expects. The teacher reaches for
// compress/gzip directly in rotation.go; klauspost/compress/gzip is the
// same API, faster, and is what the rest of the retrieval pack (kopia,
// altmount, MedYan) reaches for instead.
type bufTarget struct {
	buf *octo.Buffer
}

func (t *bufTarget) Write(p []byte) (int, error) { return t.buf.WriteByteArray(p) }

// eofReader adapts an *octo.Buffer into an io.Reader that signals
// end-of-stream with the literal io.EOF sentinel rather than
// octo.ErrEndOfInput. gzip.Reader's readHeader probes for a second
// multistream member by reading past the trailer and requires that
// probe to fail with io.EOF specifically; any other error (including
// octo.ErrEndOfInput, which this package uses everywhere else) is
// treated as a real read failure, which would otherwise turn every
// well-formed single-member stream into a false ErrFormatMismatch.
type eofReader struct {
	buf *octo.Buffer
}

func (r *eofReader) Read(p []byte) (int, error) {
	n, err := r.buf.Read(p)
	if err == octo.ErrEndOfInput {
		err = io.EOF
	}
	return n, err
}

// GzipOptions carries the optional GZIP header metadata fields
// (RFC 1952 FNAME/FCOMMENT/MTIME) that the Kotlin original's
// GzipSink/GzipSource expose beyond bare compress/decompress.
type GzipOptions struct {
	Name    string
	Comment string
	ModTime time.Time
	Level   int // defaults to gzip.DefaultCompression when zero
}

// GzipCompressor is a Transformation that GZIP-compresses its input.
// It streams: each TransformAtMostTo call feeds newly available source
// bytes straight into the underlying flate writer, which emits
// compressed blocks as its window fills rather than waiting for Finish.
type GzipCompressor struct {
	target bufTarget
	gz     *gzip.Writer
}

// NewGzipCompressor returns a GzipCompressor with the given header
// options. A zero-value GzipOptions produces an unnamed stream at
// gzip.DefaultCompression.
func NewGzipCompressor(opts GzipOptions) *GzipCompressor {
	c := &GzipCompressor{}
	level := opts.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	gz, _ := gzip.NewWriterLevel(&c.target, level)
	gz.Name = opts.Name
	gz.Comment = opts.Comment
	gz.ModTime = opts.ModTime
	c.gz = gz
	return c
}

// TransformAtMostTo consumes up to byteCount bytes from source and
// writes them through the gzip writer into sink.
func (c *GzipCompressor) TransformAtMostTo(source, sink *octo.Buffer, byteCount int64) (int64, error) {
	n := byteCount
	if source.Len() < n {
		n = source.Len()
	}
	if n == 0 {
		return 0, nil
	}

	data, err := source.ReadByteArrayN(int(n))
	if err != nil {
		return 0, err
	}

	c.target.buf = sink
	_, err = c.gz.Write(data)
	c.target.buf = nil
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Finish flushes and closes the gzip writer, appending the trailer
// (CRC32 and ISIZE) to sink.
func (c *GzipCompressor) Finish(sink *octo.Buffer) error {
	c.target.buf = sink
	err := c.gz.Close()
	c.target.buf = nil
	return err
}

// Close is a no-op: Finish already released the gzip writer's state.
func (c *GzipCompressor) Close() error { return nil }

// GzipDecompressor is a Transformation that GZIP-decompresses its
// input. TransformAtMostTo stages source bytes without producing
// output; the actual inflate, and the CRC32/ISIZE trailer
// verification, happen in Finish once the upstream has signalled
// end-of-stream — framing is delegated entirely to klauspost/compress's
// RFC 1952 implementation rather than hand-rolled, since the choice and
// correctness of the GZIP codec itself is an external collaborator this
// package only needs to drive through the Transformation contract.
type GzipDecompressor struct {
	pending octo.Buffer
	header  gzip.Header
	done    bool
}

// NewGzipDecompressor returns a ready GzipDecompressor.
func NewGzipDecompressor() *GzipDecompressor { return &GzipDecompressor{} }

// TransformAtMostTo moves up to byteCount bytes from source into an
// internal staging buffer, consuming them without producing output.
func (d *GzipDecompressor) TransformAtMostTo(source, sink *octo.Buffer, byteCount int64) (int64, error) {
	if d.done {
		return -1, nil
	}
	n := byteCount
	if source.Len() < n {
		n = source.Len()
	}
	if n == 0 {
		return 0, nil
	}
	if err := d.pending.WriteFrom(source, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Finish inflates everything staged so far, verifies the trailer, and
// appends the decompressed bytes to sink. A bad magic, an unsupported
// compression method, or a CRC32/ISIZE mismatch is reported as
// octo.ErrFormatMismatch; a truncated DEFLATE body is reported as
// octo.ErrMalformedInput.
func (d *GzipDecompressor) Finish(sink *octo.Buffer) error {
	d.done = true

	zr, err := gzip.NewReader(&eofReader{buf: &d.pending})
	if err != nil {
		return wrapFormatError(err)
	}
	d.header = zr.Header

	out, err := io.ReadAll(zr)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return octo.ErrMalformedInput
		}
		return wrapFormatError(err)
	}
	if err := zr.Close(); err != nil {
		return wrapFormatError(err)
	}

	_, err = sink.WriteByteArray(out)
	return err
}

// Header returns the GZIP header metadata (name, comment, mod time)
// parsed during Finish. Valid only after Finish has returned nil.
func (d *GzipDecompressor) Header() (name, comment string, modTime time.Time) {
	return d.header.Name, d.header.Comment, d.header.ModTime
}

// Close is a no-op: Finish already released the gzip reader.
func (d *GzipDecompressor) Close() error { return nil }

func wrapFormatError(err error) error {
	if err == gzip.ErrHeader || err == gzip.ErrChecksum {
		return octo.ErrFormatMismatch
	}
	return octo.ErrFormatMismatch
}
