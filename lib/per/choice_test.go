package per

import (
	"bytes"
	"testing"
)

// bazEncoding encodes the `baz{a: u8, b: u16}` alternative of an
// extensible 3-way CHOICE (selectors 0=foo, 1=bar, 2=baz), matching
// the concrete end-to-end scenario: Choice encode of Baz{a=42,b=300}
// -> [0x45, 0x40, 0x25, 0x80].
func bazEncoding(a uint8, b uint16) (Encoding, error) {
	e, err := EncodeChoiceHeader(2, 3, true)
	if err != nil {
		return Encoding{}, err
	}
	aEnc, err := EncodeUint8(a, UNCONSTRAINED)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(aEnc); err != nil {
		return Encoding{}, err
	}
	bEnc, err := EncodeUint16(b, UNCONSTRAINED)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(bEnc); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

func TestChoiceEncodeBaz(t *testing.T) {
	enc, err := bazEncoding(42, 300)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x45, 0x40, 0x25, 0x80}
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("got %v, want %v", enc.Bytes(), want)
	}
}

func TestChoiceHeaderRoundTrip(t *testing.T) {
	for _, selector := range []int{0, 1, 2} {
		enc, err := EncodeChoiceHeader(selector, 3, true)
		if err != nil {
			t.Fatalf("selector %d: %v", selector, err)
		}
		d := NewDecoder(enc.Bytes())
		got, err := DecodeChoiceHeader(d, 3, true)
		if err != nil {
			t.Fatalf("selector %d: decode: %v", selector, err)
		}
		if got != selector {
			t.Errorf("selector %d: got %d", selector, got)
		}
	}
}

func TestChoiceHeaderExtensionAddition(t *testing.T) {
	enc, err := EncodeChoiceHeader(4, 3, true) // extension addition index 1
	if err != nil {
		t.Fatal(err)
	}
	d := NewDecoder(enc.Bytes())
	got, err := DecodeChoiceHeader(d, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}
