// buffer_read.go: read-side Buffer/Source operations
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

// Source is the read half of Buffer's double interface.
type Source interface {
	ReadAtMostTo(sink *Buffer, max int64) (int64, error)
	Close() error
}

func (b *Buffer) popByte() (byte, error) {
	if b.head == nil {
		return 0, ErrEndOfInput
	}
	s := b.head
	c := s.data[s.pos]
	s.pos++
	b.byteCount--
	b.dropHeadIfEmpty()
	return c, nil
}

// ReadByte consumes and returns a single byte.
func (b *Buffer) ReadByte() (byte, error) { return b.popByte() }

// ReadByteArray consumes and returns every remaining readable byte.
func (b *Buffer) ReadByteArray() ([]byte, error) {
	return b.ReadByteArrayN(int(b.byteCount))
}

// ReadByteArrayN consumes exactly n bytes into a freshly allocated
// slice. Returns ErrEndOfInput, with nothing consumed, if fewer than n
// bytes are available.
func (b *Buffer) ReadByteArrayN(n int) ([]byte, error) {
	if int64(n) > b.byteCount {
		return nil, ErrEndOfInput
	}
	out := make([]byte, n)
	if err := b.readInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// readInto fills dst completely from the buffer, or fails with
// ErrEndOfInput and consumes nothing if there are not enough bytes.
func (b *Buffer) readInto(dst []byte) error {
	if int64(len(dst)) > b.byteCount {
		return ErrEndOfInput
	}
	remaining := dst
	for len(remaining) > 0 {
		s := b.head
		n := copy(remaining, s.data[s.pos:s.limit])
		s.pos += n
		remaining = remaining[n:]
		b.byteCount -= int64(n)
		b.dropHeadIfEmpty()
	}
	return nil
}

func getBigEndian(p []byte, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v = v<<8 | uint64(p[i])
	}
	return v
}

func getLittleEndian(p []byte, width int) uint64 {
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(p[i])
	}
	return v
}

func (b *Buffer) readFixed(width int, be bool) (uint64, error) {
	var tmp [8]byte
	if err := b.readInto(tmp[:width]); err != nil {
		return 0, err
	}
	if be {
		return getBigEndian(tmp[:width], width), nil
	}
	return getLittleEndian(tmp[:width], width), nil
}

// ReadShort consumes a big-endian 16-bit value.
func (b *Buffer) ReadShort() (int16, error) {
	v, err := b.readFixed(2, true)
	return int16(v), err
}

// ReadShortLe consumes a little-endian 16-bit value.
func (b *Buffer) ReadShortLe() (int16, error) {
	v, err := b.readFixed(2, false)
	return int16(v), err
}

// ReadInt consumes a big-endian 32-bit value.
func (b *Buffer) ReadInt() (int32, error) {
	v, err := b.readFixed(4, true)
	return int32(v), err
}

// ReadIntLe consumes a little-endian 32-bit value.
func (b *Buffer) ReadIntLe() (int32, error) {
	v, err := b.readFixed(4, false)
	return int32(v), err
}

// ReadLong consumes a big-endian 64-bit value.
func (b *Buffer) ReadLong() (int64, error) {
	v, err := b.readFixed(8, true)
	return int64(v), err
}

// ReadLongLe consumes a little-endian 64-bit value.
func (b *Buffer) ReadLongLe() (int64, error) {
	v, err := b.readFixed(8, false)
	return int64(v), err
}

// Skip discards n bytes. Fails with ErrEndOfInput, consuming nothing,
// if fewer than n bytes are available.
func (b *Buffer) Skip(n int64) error {
	if n < 0 {
		return &ArgumentError{Op: "Skip", Msg: "negative byteCount"}
	}
	if n > b.byteCount {
		return ErrEndOfInput
	}
	remaining := n
	for remaining > 0 {
		s := b.head
		take := int64(s.size())
		if take > remaining {
			take = remaining
		}
		s.pos += int(take)
		b.byteCount -= take
		remaining -= take
		b.dropHeadIfEmpty()
	}
	return nil
}

// ReadAtMostTo moves up to max bytes from b into sink, returning the
// number actually moved. Returns (0, ErrEndOfInput) only when b is
// empty; a non-empty b always moves at least one byte when max > 0,
// and returns (0, nil) when max == 0.
func (b *Buffer) ReadAtMostTo(sink *Buffer, max int64) (int64, error) {
	if max < 0 {
		return 0, &ArgumentError{Op: "ReadAtMostTo", Msg: "negative max"}
	}
	if b.byteCount == 0 {
		return 0, ErrEndOfInput
	}
	n := b.byteCount
	if max < n {
		n = max
	}
	if n == 0 {
		return 0, nil
	}
	if err := sink.WriteFrom(b, n); err != nil {
		return 0, err
	}
	return n, nil
}

// TransferTo drains all of b's readable bytes into sink, returning the
// total moved.
func (b *Buffer) TransferTo(sink *Buffer) (int64, error) {
	n := b.byteCount
	if n == 0 {
		return 0, nil
	}
	if err := sink.WriteFrom(b, n); err != nil {
		return 0, err
	}
	return n, nil
}

// TransferFrom drains all of src's readable bytes into b, returning the
// total moved.
func (b *Buffer) TransferFrom(src *Buffer) (int64, error) {
	return src.TransferTo(b)
}

// Read implements io.Reader over the buffer's readable bytes.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.byteCount == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, ErrEndOfInput
	}
	n := len(p)
	if int64(n) > b.byteCount {
		n = int(b.byteCount)
	}
	if err := b.readInto(p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}
