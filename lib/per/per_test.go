package per

import (
	"errors"
	"testing"
)

// TestMinimalUnsignedWidth validates the octet count produced by the
// math/bits-based implementation against the expected minimal width
// for representing a value as a big-endian unsigned integer.
func TestMinimalUnsignedWidth(t *testing.T) {
	test := func(value uint64, expected int, description string) {
		t.Run(description, func(t *testing.T) {
			result := minimalUnsignedWidth(value)
			if result != expected {
				t.Errorf("minimalUnsignedWidth(%d) = %d, want %d", value, result, expected)
			}
		})
	}
	test(0, 1, "0 requires 1 octet")
	test(1, 1, "1 fits in 1 octet")
	test(0xFF, 1, "255 (max 1 octet)")
	test(0x100, 2, "256 (needs 2 octets)")
	test(0xFFFF, 2, "65535 (max 2 octets)")
	test(0x10000, 3, "65536 (needs 3 octets)")
	test(0xFFFFFF, 3, "16777215 (max 3 octets)")
	test(0x1000000, 4, "16777216 (needs 4 octets)")
	test(0xFFFFFFFF, 4, "max uint32")
	test(0x100000000, 5, "requires 5 octets")
	test(0xFFFFFFFFFFFFFFFF, 8, "max uint64")
	test(0x8000000000000000, 8, "high bit set")
}

// TestMinimalSignedWidth validates the octet count for the minimal
// two's-complement representation of a signed value.
func TestMinimalSignedWidth(t *testing.T) {
	test := func(value int64, expected int, description string) {
		t.Run(description, func(t *testing.T) {
			result := minimalSignedWidth(value)
			if result != expected {
				t.Errorf("minimalSignedWidth(%d) = %d, want %d", value, result, expected)
			}
		})
	}
	test(0, 1, "zero")
	test(1, 1, "positive 1")
	test(127, 1, "positive 127 (max positive for 1 octet)")
	test(128, 2, "positive 128 (needs 2 octets)")
	test(32767, 2, "positive 32767 (max positive for 2 octets)")
	test(32768, 3, "positive 32768 (needs 3 octets)")
	test(2147483647, 4, "max int32")
	test(2147483648, 5, "needs 5 octets")
	test(9223372036854775807, 8, "max int64")
	test(-1, 1, "negative -1")
	test(-128, 1, "min negative for 1 octet")
	test(-129, 2, "negative -129 (needs 2 octets)")
	test(-32768, 2, "min negative for 2 octets")
	test(-32769, 3, "negative -32769 (needs 3 octets)")
	test(-2147483648, 4, "min int32")
	test(-2147483649, 5, "needs 5 octets")
	test(-9223372036854775808, 8, "min int64")
}

func TestPutGetUintBE(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 65535, 1 << 32} {
		w := minimalUnsignedWidth(v)
		got := getUintBE(putUintBE(v, w))
		if got != v {
			t.Errorf("round trip %d through %d octets: got %d", v, w, got)
		}
	}
}

func TestPutGetIntBE(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 32767, -32768, 1 << 30, -(1 << 30)} {
		w := minimalSignedWidth(v)
		got := getIntBE(putUintBE(uint64(v), w))
		if got != v {
			t.Errorf("round trip %d through %d octets: got %d", v, w, got)
		}
	}
}

// TestConstrainedWholeNumberLengthDeterminantForm exercises the range >
// 64K-1 branch of EncodeConstrainedWholeNumber/DecodeConstrainedWholeNumber,
// which carries its own length determinant rather than a bare bit field
// or fixed 1-2 octet form.
func TestConstrainedWholeNumberLengthDeterminantForm(t *testing.T) {
	lb, ub := int64(100000), int64(200000)
	for _, n := range []int64{lb, ub, 150000} {
		enc, err := EncodeConstrainedWholeNumber(lb, ub, n)
		if err != nil {
			t.Fatalf("encode %d: %v", n, err)
		}
		d := NewDecoder(enc.Bytes())
		got, err := DecodeConstrainedWholeNumber(d, lb, ub)
		if err != nil {
			t.Fatalf("decode %d: %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip %d: got %d", n, got)
		}
	}
}

// TestConstrainedWholeNumberLengthDeterminantFormOutOfRange checks that
// a conforming length determinant carrying a raw value outside [lb, ub]
// is rejected with ErrOutOfRange rather than silently accepted.
func TestConstrainedWholeNumberLengthDeterminantFormOutOfRange(t *testing.T) {
	lb, ub := int64(100000), int64(200000)
	// Same range as above (needs 3 octets), but encode a value for a
	// wider range that happens to produce a conforming 3-octet length
	// determinant while landing outside [lb, ub].
	enc, err := EncodeConstrainedWholeNumber(0, 16777215, 5000000)
	if err != nil {
		t.Fatal(err)
	}
	d := NewDecoder(enc.Bytes())
	if _, err := DecodeConstrainedWholeNumber(d, lb, ub); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
