package octo

import "testing"

func TestParseByteCountSuffixes(t *testing.T) {
	cases := map[string]int64{
		"1024":   1024,
		"1KiB":   1024,
		"1MiB":   1024 * 1024,
		"1GiB":   1024 * 1024 * 1024,
		"1KB":    1000,
		"1MB":    1000 * 1000,
		"1GB":    1000 * 1000 * 1000,
		"64K":    64 * 1024,
		"2M":     2 * 1024 * 1024,
		"1g":     1024 * 1024 * 1024,
		"1kib":   1024,
	}
	for in, want := range cases {
		got, err := ParseByteCount(in)
		if err != nil {
			t.Fatalf("ParseByteCount(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseByteCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseByteCountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "12XB", "-1YB"} {
		if _, err := ParseByteCount(in); err == nil {
			t.Fatalf("ParseByteCount(%q) should have failed", in)
		}
	}
}

func TestParseByteCountOverflow(t *testing.T) {
	if _, err := ParseByteCount("99999999999999999999GB"); err == nil {
		t.Fatalf("expected overflow error")
	}
}
