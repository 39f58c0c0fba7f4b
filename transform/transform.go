// transform.go: bidirectional byte processor interface and adapters
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package transform provides the zero-copy transformation pipeline:
// adapters that insert a Transformation (compress, decompress, hash,
// or encrypt) between a buffered wrapper and its raw endpoint.
package transform

import "github.com/agilira/octo"

// Transformation is a bidirectional byte processor: a compressor,
// decompressor, hash digest, or stream cipher that consumes source
// bytes and produces sink bytes through octo.Buffer.
type Transformation interface {
	// TransformAtMostTo consumes up to byteCount bytes from source and
	// appends produced bytes to sink, returning the number of source
	// bytes actually consumed, or (-1, nil) at end-of-transform.
	TransformAtMostTo(source, sink *octo.Buffer, byteCount int64) (int64, error)

	// Finish appends any trailing output to sink and, for
	// decompressors, validates end-of-stream markers (CRC, length,
	// padding). Called exactly once, after the upstream has reported
	// end-of-stream.
	Finish(sink *octo.Buffer) error

	// Close releases any resources held by the transformation.
	Close() error
}

// transformedSource drives t to produce into the caller's sink, pulling
// from upstream as needed, calling Finish exactly once at upstream
// end-of-stream.
type transformedSource struct {
	upstream octo.RawSource
	t        Transformation
	pending  octo.Buffer
	upDone   bool
	finished bool
	closed   bool
}

// Source wraps upstream so reads drive t over its bytes, producing the
// transformed stream: decompression, digest framing, or decryption,
// depending on t.
func Source(upstream octo.RawSource, t Transformation) octo.RawSource {
	return &transformedSource{upstream: upstream, t: t}
}

func (s *transformedSource) ReadAtMostTo(sink *octo.Buffer, max int64) (int64, error) {
	if s.closed {
		return 0, octo.ErrClosed
	}
	if s.finished {
		return 0, octo.ErrEndOfInput
	}

	for {
		if s.pending.Len() == 0 && !s.upDone {
			n, err := s.upstream.ReadAtMostTo(&s.pending, 8192)
			if err != nil {
				if err != octo.ErrEndOfInput {
					return 0, err
				}
				s.upDone = true
			} else if n == 0 {
				s.upDone = true
			}
		}

		var scratch octo.Buffer
		consumed, err := s.t.TransformAtMostTo(&s.pending, &scratch, max)
		if err != nil {
			return 0, err
		}

		if consumed == -1 {
			if err := s.t.Finish(&scratch); err != nil {
				return 0, err
			}
			s.finished = true
			n, _ := scratch.TransferTo(sink)
			if n == 0 {
				return 0, octo.ErrEndOfInput
			}
			return n, nil
		}

		produced := scratch.Len()
		if produced > 0 {
			n, _ := scratch.TransferTo(sink)
			return n, nil
		}

		if consumed == 0 && s.upDone && s.pending.Len() == 0 {
			if err := s.t.Finish(&scratch); err != nil {
				return 0, err
			}
			s.finished = true
			n, _ := scratch.TransferTo(sink)
			if n == 0 {
				return 0, octo.ErrEndOfInput
			}
			return n, nil
		}
		// Transform consumed input but produced nothing yet (header
		// parsing, internal buffering); loop to pull more.
	}
}

func (s *transformedSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.t.Close()
	return s.upstream.Close()
}

// transformedSink pushes bytes written to it through t before
// forwarding the result to the downstream sink.
type transformedSink struct {
	downstream octo.RawSink
	t          Transformation
	closed     bool
}

// Sink wraps downstream so writes drive t over the bytes before they
// reach downstream: compression, digest accumulation, or encryption.
func Sink(downstream octo.RawSink, t Transformation) octo.RawSink {
	return &transformedSink{downstream: downstream, t: t}
}

func (s *transformedSink) Write(source *octo.Buffer, byteCount int64) error {
	if s.closed {
		return octo.ErrClosed
	}
	remaining := byteCount
	for remaining > 0 {
		var scratch octo.Buffer
		consumed, err := s.t.TransformAtMostTo(source, &scratch, remaining)
		if err != nil {
			return err
		}
		if consumed <= 0 {
			break
		}
		if scratch.Len() > 0 {
			if err := s.downstream.Write(&scratch, scratch.Len()); err != nil {
				return err
			}
		}
		remaining -= consumed
	}
	return nil
}

func (s *transformedSink) Flush() error { return s.downstream.Flush() }

func (s *transformedSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var scratch octo.Buffer
	err := s.t.Finish(&scratch)
	if scratch.Len() > 0 {
		if werr := s.downstream.Write(&scratch, scratch.Len()); werr != nil && err == nil {
			err = werr
		}
	}
	_ = s.t.Close()
	if cerr := s.downstream.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
