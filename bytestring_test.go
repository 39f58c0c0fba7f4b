package octo

import "testing"

func TestByteStringEqual(t *testing.T) {
	a := NewByteString([]byte("hello"))
	b := NewByteString([]byte("hello"))
	c := NewByteString([]byte("world"))

	if !a.Equal(b) {
		t.Fatalf("equal byte strings reported unequal")
	}
	if a.Equal(c) {
		t.Fatalf("unequal byte strings reported equal")
	}
}

func TestByteStringHashCodeStable(t *testing.T) {
	a := NewByteString([]byte("stable content"))
	b := NewByteString([]byte("stable content"))
	if a.HashCode() != b.HashCode() {
		t.Fatalf("equal content produced different hash codes")
	}
}

func TestByteStringHashCodeDeterministicAcrossCalls(t *testing.T) {
	bs := NewByteString([]byte("recompute me"))
	first := bs.HashCode()
	second := bs.HashCode()
	if first != second {
		t.Fatalf("hash changed between calls on the same ByteString")
	}
}

func TestByteStringIsIndependentOfSource(t *testing.T) {
	src := []byte("original")
	bs := NewByteString(src)
	src[0] = 'X'
	if bs.String() != "original" {
		t.Fatalf("ByteString shares storage with its source slice: %q", bs.String())
	}
}

func TestByteStringBase64Hex(t *testing.T) {
	bs := NewByteString([]byte("octo"))

	b64 := bs.Base64()
	back, err := DecodeBase64(b64)
	if err != nil || !back.Equal(bs) {
		t.Fatalf("base64 round trip failed: %v, %v", back, err)
	}

	hx := bs.Hex()
	back2, err := DecodeHex(hx)
	if err != nil || !back2.Equal(bs) {
		t.Fatalf("hex round trip failed: %v, %v", back2, err)
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	if _, err := DecodeBase64("not valid base64!!"); err == nil {
		t.Fatalf("expected an error decoding invalid base64")
	}
}
