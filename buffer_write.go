// buffer_write.go: write-side Buffer/Sink operations
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// Sink is the write half of Buffer's double interface: bulk byte
// acceptance plus an explicit flush/close lifecycle. Buffer implements
// Sink directly; Flush and Close are no-ops on a bare Buffer.
type Sink interface {
	WriteByteArray(p []byte) (int, error)
	Flush() error
	Close() error
}

// Flush is a no-op: a Buffer has no downstream to push toward. Present
// so Buffer satisfies Sink.
func (b *Buffer) Flush() error { return nil }

func (b *Buffer) pushByte(c byte) {
	s := b.writableTail(1)
	s.data[s.limit] = c
	s.limit++
	b.byteCount++
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.pushByte(c)
	return nil
}

// WriteByteArray copies all of p into the buffer's tail, allocating
// fresh segments from the pool as needed. It always consumes all of p
// and never errors; the (int, error) shape matches io.Writer so Buffer
// composes with stdlib helpers.
func (b *Buffer) WriteByteArray(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		s := b.writableTail(1)
		n := copy(s.data[s.limit:segmentSize], p)
		s.limit += n
		p = p[n:]
		b.byteCount += int64(n)
	}
	return total, nil
}

// Write implements io.Writer over WriteByteArray.
func (b *Buffer) Write(p []byte) (int, error) { return b.WriteByteArray(p) }

func putBigEndian(dst []byte, v uint64, width int) {
	for i := 0; i < width; i++ {
		dst[i] = byte(v >> uint((width-1-i)*8))
	}
}

func putLittleEndian(dst []byte, v uint64, width int) {
	for i := 0; i < width; i++ {
		dst[i] = byte(v >> uint(i*8))
	}
}

func (b *Buffer) writeFixed(v uint64, width int, be bool) {
	var tmp [8]byte
	if be {
		putBigEndian(tmp[:width], v, width)
	} else {
		putLittleEndian(tmp[:width], v, width)
	}
	b.WriteByteArray(tmp[:width])
}

// WriteShort appends a 16-bit value in big-endian order.
func (b *Buffer) WriteShort(v int16) { b.writeFixed(uint64(uint16(v)), 2, true) }

// WriteShortLe appends a 16-bit value in little-endian order.
func (b *Buffer) WriteShortLe(v int16) { b.writeFixed(uint64(uint16(v)), 2, false) }

// WriteInt appends a 32-bit value in big-endian order.
func (b *Buffer) WriteInt(v int32) { b.writeFixed(uint64(uint32(v)), 4, true) }

// WriteIntLe appends a 32-bit value in little-endian order.
func (b *Buffer) WriteIntLe(v int32) { b.writeFixed(uint64(uint32(v)), 4, false) }

// WriteLong appends a 64-bit value in big-endian order.
func (b *Buffer) WriteLong(v int64) { b.writeFixed(uint64(v), 8, true) }

// WriteLongLe appends a 64-bit value in little-endian order.
func (b *Buffer) WriteLongLe(v int64) { b.writeFixed(uint64(v), 8, false) }

// WriteFrom transfers exactly byteCount bytes from the head of src into
// b's tail, moving whole segments where possible instead of copying.
// Segments that straddle the boundary are split; fully-consumed source
// segments are unlinked from src and either copied into b's tail (when
// it is unshared and has room) or appended directly to b. After the
// call src.Len() is exactly byteCount smaller and b.Len() is exactly
// byteCount larger.
func (b *Buffer) WriteFrom(src *Buffer, byteCount int64) error {
	if byteCount < 0 || byteCount > src.byteCount {
		return &ArgumentError{Op: "WriteFrom", Msg: "byteCount out of range"}
	}

	remaining := byteCount
	for remaining > 0 {
		s := src.head
		n := int64(s.size())

		if n > remaining {
			// split mutates s in place into the suffix and returns a
			// fresh prefix segment; s stays linked at the head of src.
			prefix, _ := s.split(int(remaining), src.pl())
			b.appendSegment(prefix)
			src.byteCount -= remaining
			remaining = 0
			continue
		}

		// Whole segment moves; try to compact into b's existing tail
		// first to avoid fragmentation, otherwise relink it wholesale.
		popNode(&src.head, s)
		if t := b.tail(); t != nil && !s.shared && s.compact(t) {
			b.byteCount += n
			src.pl().recycle(s)
		} else {
			s.prev, s.next = nil, nil
			b.appendSegment(s)
		}
		src.byteCount -= n
		remaining -= n
	}
	return nil
}

// WriteAll pulls from src until it reports end-of-stream, appending
// everything to b. Returns the total number of bytes moved.
func (b *Buffer) WriteAll(src RawSource) (int64, error) {
	var total int64
	for {
		n, err := src.ReadAtMostTo(b, segmentSize)
		if n > 0 {
			total += n
		}
		if err != nil {
			if err == ErrEndOfInput {
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}
