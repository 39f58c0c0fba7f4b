package transform

import (
	"bytes"
	"testing"

	"github.com/agilira/octo"
)

// memSource is a RawSource over a fixed byte slice, fed a few bytes at
// a time so pipeline stages are exercised across multiple pulls rather
// than in one shot.
type memSource struct {
	data   []byte
	off    int
	chunk  int
	closed bool
}

func (m *memSource) ReadAtMostTo(sink *octo.Buffer, max int64) (int64, error) {
	if m.off >= len(m.data) {
		return 0, octo.ErrEndOfInput
	}
	n := m.chunk
	if n <= 0 || n > max64(max) {
		n = max64(max)
	}
	if m.off+n > len(m.data) {
		n = len(m.data) - m.off
	}
	sink.WriteByteArray(m.data[m.off : m.off+n])
	m.off += n
	return int64(n), nil
}

func max64(v int64) int { return int(v) }

func (m *memSource) Close() error { m.closed = true; return nil }

type memSink struct {
	buf    bytes.Buffer
	closed bool
}

func (m *memSink) Write(source *octo.Buffer, byteCount int64) error {
	data, err := source.ReadByteArrayN(int(byteCount))
	if err != nil {
		return err
	}
	m.buf.Write(data)
	return nil
}
func (m *memSink) Flush() error { return nil }
func (m *memSink) Close() error { m.closed = true; return nil }

func drainSource(t *testing.T, src octo.RawSource) []byte {
	t.Helper()
	var out bytes.Buffer
	var scratch octo.Buffer
	for {
		n, err := src.ReadAtMostTo(&scratch, 64)
		if n > 0 {
			b, _ := scratch.ReadByteArray()
			out.Write(b)
		}
		if err != nil {
			if err == octo.ErrEndOfInput {
				break
			}
			t.Fatalf("ReadAtMostTo: %v", err)
		}
		if n == 0 && err == nil {
			break
		}
	}
	return out.Bytes()
}

func TestHashTransformSinkPassesThroughAndDigests(t *testing.T) {
	ht := NewHashTransform(XXHash64)
	downstream := &memSink{}
	sink := Sink(downstream, ht)

	var src octo.Buffer
	src.WriteByteArray([]byte("hello, transform"))
	if err := sink.Write(&src, src.Len()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if downstream.buf.String() != "hello, transform" {
		t.Fatalf("downstream = %q, want passthrough", downstream.buf.String())
	}
	if len(ht.Sum()) != 8 {
		t.Fatalf("xxhash64 Sum() length = %d, want 8", len(ht.Sum()))
	}
}

func TestCipherTransformRoundTrips(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	nonce := bytes.Repeat([]byte{0x24}, 24) // 24-byte nonce selects XChaCha20

	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	enc, err := NewCipherTransform(key, nonce)
	if err != nil {
		t.Fatalf("NewCipherTransform: %v", err)
	}
	upstream := &memSource{data: plaintext, chunk: 7}
	encrypted := drainSource(t, Source(upstream, enc))

	if bytes.Equal(encrypted, plaintext) {
		t.Fatalf("ciphertext equals plaintext, cipher did nothing")
	}

	dec, err := NewCipherTransform(key, nonce)
	if err != nil {
		t.Fatalf("NewCipherTransform: %v", err)
	}
	upstream2 := &memSource{data: encrypted, chunk: 11}
	decrypted := drainSource(t, Source(upstream2, dec))

	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("decrypted = %q, want %q", decrypted, plaintext)
	}
}
