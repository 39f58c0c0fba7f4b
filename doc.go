// doc.go: package overview
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package octo provides a segmented byte buffer and the streaming,
// codec, and transformation machinery built on top of it.
//
// The core type is Buffer, a FIFO byte queue backed by a ring of
// fixed-capacity Segments drawn from a SegmentPool. Buffer implements
// both Source (readable) and Sink (writable), so it can sit at either
// end of an I/O pipeline: as the private buffer inside a BufferedSource
// or BufferedSink, as the scratch space a Transformation reads from and
// writes into, or as a plain in-memory FIFO queue on its own.
//
// # Quick start
//
//	var buf octo.Buffer
//	buf.WriteString("hello world")
//	line, err := buf.ReadString(5)
//
// # Streaming
//
// RawSource and RawSink are the minimal streaming endpoints; wrap one
// with NewBufferedSource or NewBufferedSink to get request/require,
// automatic refill, and flush-on-high-water-mark:
//
//	bs := octo.NewBufferedSource(rawSource)
//	if ok, _ := bs.Request(4); ok {
//		n, _ := bs.ReadInt()
//	}
//
// # Transformations
//
// The transform subpackage chains a Transformation (gzip, a hash
// digest, a stream cipher) between a buffered wrapper and its raw
// endpoint, so compression, checksumming, and encryption all read as
// Source/Sink composition rather than special-cased I/O.
//
// A Buffer is not safe for concurrent use. Exactly one goroutine may
// hold a Buffer (or anything wrapping it) at a time.
package octo
