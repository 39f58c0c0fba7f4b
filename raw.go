// raw.go: minimal streaming endpoints and their buffered wrappers
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// RawSource is the minimal streaming read endpoint. ReadAtMostTo
// appends bytes to sink and returns how many were appended, or
// (0, ErrEndOfInput) at end of stream. A blocking implementation may
// block; ReadAtMostTo must return 0 only when byteCount == 0.
type RawSource interface {
	ReadAtMostTo(sink *Buffer, byteCount int64) (int64, error)
	Close() error
}

// RawSink is the minimal streaming write endpoint. Write moves exactly
// byteCount bytes from source to the sink's destination. Close implies
// Flush unless the sink is already in an error state.
type RawSink interface {
	Write(source *Buffer, byteCount int64) error
	Flush() error
	Close() error
}

// bufferedHighWaterMark is the default threshold, in bytes, above which
// a BufferedSink forwards to its downstream RawSink instead of waiting
// for an explicit Flush.
const bufferedHighWaterMark = segmentSize

// BufferedSource wraps a RawSource with a private Buffer, amortizing
// calls to the raw endpoint: small reads are served entirely from the
// buffer, and Request/Require pull additional segments only when
// needed.
type BufferedSource struct {
	raw    RawSource
	buf    Buffer
	closed bool
}

// NewBufferedSource returns a BufferedSource over raw.
func NewBufferedSource(raw RawSource) *BufferedSource {
	return &BufferedSource{raw: raw}
}

// Request reports whether at least n bytes can be made available,
// pulling from the underlying raw source as needed.
func (s *BufferedSource) Request(n int64) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	for s.buf.Len() < n {
		read, err := s.raw.ReadAtMostTo(&s.buf, segmentSize)
		if err != nil {
			if err == ErrEndOfInput {
				return false, nil
			}
			return false, err
		}
		if read == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Require fails with ErrEndOfInput if fewer than n bytes can be made
// available.
func (s *BufferedSource) Require(n int64) error {
	ok, err := s.Request(n)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEndOfInput
	}
	return nil
}

// ReadAtMostTo implements RawSource, serving from the private buffer
// first and refilling from upstream only when it is empty.
func (s *BufferedSource) ReadAtMostTo(sink *Buffer, max int64) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.buf.Len() == 0 {
		n, err := s.raw.ReadAtMostTo(&s.buf, segmentSize)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, ErrEndOfInput
		}
	}
	return s.buf.ReadAtMostTo(sink, max)
}

// ReadByte consumes a single byte, pulling from upstream if needed.
func (s *BufferedSource) ReadByte() (byte, error) {
	if err := s.Require(1); err != nil {
		return 0, err
	}
	return s.buf.ReadByte()
}

// ReadInt consumes a big-endian 32-bit value, pulling from upstream if
// needed.
func (s *BufferedSource) ReadInt() (int32, error) {
	if err := s.Require(4); err != nil {
		return 0, err
	}
	return s.buf.ReadInt()
}

// ReadLine reads a line, pulling from upstream until a newline or
// end-of-stream is seen.
func (s *BufferedSource) ReadLine() (string, error) {
	for {
		if idx := s.buf.IndexOf('\n', 0, s.buf.Len()); idx != -1 {
			return s.buf.ReadLine()
		}
		n, err := s.raw.ReadAtMostTo(&s.buf, segmentSize)
		if err != nil {
			if err == ErrEndOfInput {
				if s.buf.Len() == 0 {
					return "", ErrEndOfInput
				}
				return s.buf.ReadLine()
			}
			return "", err
		}
		if n == 0 {
			return "", ErrEndOfInput
		}
	}
}

// Buffer exposes the private buffer for advanced callers (e.g. a
// Transformation pulling source bytes directly).
func (s *BufferedSource) Buffer() *Buffer { return &s.buf }

// Close closes the underlying raw source. Dropping a BufferedSource
// without calling Close leaks the raw endpoint's resources; callers
// must guarantee Close runs on every exit path.
func (s *BufferedSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.raw.Close()
}

// BufferedSink wraps a RawSink with a private Buffer, forwarding to the
// raw endpoint when the buffer exceeds its high-water mark, on explicit
// Flush, on Emit, or on Close.
type BufferedSink struct {
	raw       RawSink
	buf       Buffer
	highWater int64
	closed    bool
}

// NewBufferedSink returns a BufferedSink over raw with the default
// high-water mark.
func NewBufferedSink(raw RawSink) *BufferedSink {
	return &BufferedSink{raw: raw, highWater: bufferedHighWaterMark}
}

// NewBufferedSinkSize returns a BufferedSink over raw with an explicit
// high-water mark, e.g. parsed via ParseByteCount.
func NewBufferedSinkSize(raw RawSink, highWater int64) *BufferedSink {
	return &BufferedSink{raw: raw, highWater: highWater}
}

func (s *BufferedSink) forwardIfOverHighWater() error {
	if n := s.buf.Len(); n > s.highWater {
		return s.raw.Write(&s.buf, n)
	}
	return nil
}

// WriteByteArray buffers p, forwarding to the raw sink once the
// high-water mark is crossed.
func (s *BufferedSink) WriteByteArray(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	n, _ := s.buf.WriteByteArray(p)
	if err := s.forwardIfOverHighWater(); err != nil {
		return n, err
	}
	return n, nil
}

// WriteInt buffers a big-endian 32-bit value.
func (s *BufferedSink) WriteInt(v int32) error {
	if s.closed {
		return ErrClosed
	}
	s.buf.WriteInt(v)
	return s.forwardIfOverHighWater()
}

// Buffer exposes the private buffer for advanced callers.
func (s *BufferedSink) Buffer() *Buffer { return &s.buf }

// Emit forwards everything currently buffered to the downstream sink,
// with no guarantee the downstream itself flushes.
func (s *BufferedSink) Emit() error {
	if s.closed {
		return ErrClosed
	}
	if n := s.buf.Len(); n > 0 {
		return s.raw.Write(&s.buf, n)
	}
	return nil
}

// Flush forwards remaining buffered bytes and calls the downstream
// Flush.
func (s *BufferedSink) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.Emit(); err != nil {
		return err
	}
	return s.raw.Flush()
}

// Close flushes and closes the underlying raw sink. Safe to call more
// than once.
func (s *BufferedSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.Emit(); err != nil {
		_ = s.raw.Close()
		return err
	}
	return s.raw.Close()
}
