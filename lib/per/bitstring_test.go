package per

import (
	"bytes"
	"encoding/asn1"
	"testing"
)

func TestDecodeBitStringFixedSize(t *testing.T) {
	// Bit string decode with size.max = 20 on b"\x00\xe0\x00" -> 20-bit
	// string with bits 17, 18, 19 set.
	size := NewConstraint(Int64Ptr(20), Int64Ptr(20))
	d := NewDecoder([]byte{0x00, 0xe0, 0x00})
	got, err := DecodeBitString(d, Constraints{Size: &size})
	if err != nil {
		t.Fatal(err)
	}
	if got.BitLength != 20 {
		t.Fatalf("bit length: got %d, want 20", got.BitLength)
	}
	for i := 0; i < 20; i++ {
		want := i == 17 || i == 18 || i == 19
		if BitStringBit(got, i) != want {
			t.Errorf("bit %d: got %v, want %v", i, BitStringBit(got, i), want)
		}
	}
}

func TestBitStringEncodeDecodeRoundTrip(t *testing.T) {
	size := NewConstraint(Int64Ptr(20), Int64Ptr(20))
	for _, wire := range [][]byte{
		{0x00, 0xe0, 0x00},
		{0xFF, 0xFF, 0xF0},
		{0x12, 0x34, 0x50},
	} {
		d := NewDecoder(wire)
		bs, err := DecodeBitString(d, Constraints{Size: &size})
		if err != nil {
			t.Fatalf("decode %v: %v", wire, err)
		}
		enc, err := EncodeBitString(bs, Constraints{Size: &size})
		if err != nil {
			t.Fatalf("encode %v: %v", wire, err)
		}
		if !bytes.Equal(enc.Bytes(), wire) {
			t.Errorf("round trip %v: got %v", wire, enc.Bytes())
		}
	}
}

func TestBitStringVariableSizeRoundTrip(t *testing.T) {
	size := NewConstraint(Int64Ptr(0), Int64Ptr(100))
	for _, n := range []int{0, 1, 7, 8, 9, 16, 17, 31} {
		enc, err := EncodeLength(n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		dec := NewDecoder(enc.Bytes())
		got, err := DecodeLength(dec)
		if err != nil || got != n {
			t.Fatalf("n=%d: length round trip got %d, %v", n, got, err)
		}

		numBytes := (n + 7) / 8
		data := make([]byte, numBytes)
		for i := range data {
			data[i] = byte(0x55 + i)
		}
		if rem := n % 8; rem != 0 {
			data[numBytes-1] &= byte(0xFF << uint(8-rem))
		}
		original := asn1.BitString{Bytes: data, BitLength: n}

		encoded, err := EncodeBitString(original, Constraints{Size: &size})
		if err != nil {
			t.Fatalf("n=%d: encode: %v", n, err)
		}
		rd := NewDecoder(encoded.Bytes())
		decoded, err := DecodeBitString(rd, Constraints{Size: &size})
		if err != nil {
			t.Fatalf("n=%d: decode: %v", n, err)
		}
		if decoded.BitLength != n {
			t.Fatalf("n=%d: bit length got %d", n, decoded.BitLength)
		}
		for i := 0; i < n; i++ {
			if BitStringBit(original, i) != BitStringBit(decoded, i) {
				t.Errorf("n=%d bit %d: mismatch", n, i)
			}
		}
	}
}
