package octo

import "testing"

func TestUnsafeWriteToTailThenReadFromHead(t *testing.T) {
	b := NewBuffer(nil)
	err := b.UnsafeWriteToTail(16, func(data []byte) int {
		return copy(data, []byte("payload"))
	})
	if err != nil {
		t.Fatalf("UnsafeWriteToTail: %v", err)
	}
	if b.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", b.Len())
	}

	var got []byte
	err = b.UnsafeReadFromHead(func(data []byte) int {
		got = append(got, data...)
		return len(data)
	})
	if err != nil {
		t.Fatalf("UnsafeReadFromHead: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("read back = %q, want %q", got, "payload")
	}
	if !b.IsEmpty() {
		t.Fatalf("buffer should be empty after consuming the only segment")
	}
}

func TestUnsafeReadFromHeadRejectsOutOfRangeCount(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteByteArray([]byte("abc"))

	err := b.UnsafeReadFromHead(func(data []byte) int {
		return len(data) + 1 // invalid: claims more than was offered
	})
	var capErr *CapacityError
	if !asCapacityError(err, &capErr) {
		t.Fatalf("err = %v, want *CapacityError", err)
	}
}

func asCapacityError(err error, out **CapacityError) bool {
	ce, ok := err.(*CapacityError)
	if ok {
		*out = ce
	}
	return ok
}

func TestUnsafeIterateSegments(t *testing.T) {
	b := NewBuffer(nil)
	payload := make([]byte, segmentSize*2+10)
	for i := range payload {
		payload[i] = byte(i)
	}
	b.WriteByteArray(payload)

	var total int
	b.UnsafeIterateSegments(func(v SegmentView) {
		total += len(v.Data)
	})
	if total != len(payload) {
		t.Fatalf("iterated %d bytes, want %d", total, len(payload))
	}
}
