package octo

import "testing"

func TestPeekSnapshotIsIndependent(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteString("hello world")

	peek := b.Peek()
	var scratch Buffer
	n, err := peek.ReadAtMostTo(&scratch, 5)
	if err != nil || n != 5 {
		t.Fatalf("peek.ReadAtMostTo() = %d, %v", n, err)
	}
	got, _ := scratch.ReadByteArray()
	if string(got) != "hello" {
		t.Fatalf("peek read = %q, want %q", got, "hello")
	}

	// The original buffer must be unaffected by reads through the peek.
	if b.Len() != int64(len("hello world")) {
		t.Fatalf("original buffer length changed after peek read: %d", b.Len())
	}
	original, _ := b.ReadByteArray()
	if string(original) != "hello world" {
		t.Fatalf("original buffer contents = %q, want %q", original, "hello world")
	}
}

func TestSnapshotCapturesCurrentContents(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteString("hello")

	snap := b.Snapshot()
	b.WriteString(" world")

	if snap.String() != "hello" {
		t.Fatalf("Snapshot() = %q, want %q", snap.String(), "hello")
	}
	rest, _ := b.ReadByteArray()
	if string(rest) != "hello world" {
		t.Fatalf("buffer after Snapshot = %q, want %q", rest, "hello world")
	}
}

func TestIndexOfByteString(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteString("the quick brown fox")

	idx := b.IndexOfByteString(ByteStringFromString("brown"), 0)
	if idx != 10 {
		t.Fatalf("IndexOfByteString() = %d, want 10", idx)
	}

	idx = b.IndexOfByteString(ByteStringFromString("missing"), 0)
	if idx != -1 {
		t.Fatalf("IndexOfByteString() = %d, want -1", idx)
	}
}

func TestGetAndStartsWith(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteString("abc")

	c, err := b.Get(1)
	if err != nil || c != 'b' {
		t.Fatalf("Get(1) = %c, %v, want 'b'", c, err)
	}
	if !b.StartsWith('a') {
		t.Fatalf("StartsWith('a') = false, want true")
	}
	if _, err := b.Get(10); err == nil {
		t.Fatalf("Get out of range should error")
	}
}

func TestCopyToRange(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteString("0123456789")

	var dst Buffer
	if err := b.CopyTo(&dst, 2, 5); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	got, _ := dst.ReadByteArray()
	if string(got) != "234" {
		t.Fatalf("CopyTo range = %q, want %q", got, "234")
	}
	// b itself must be untouched by CopyTo.
	if b.Len() != 10 {
		t.Fatalf("CopyTo should not consume from b, Len() = %d", b.Len())
	}
}
