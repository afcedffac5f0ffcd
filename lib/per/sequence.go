package per

import "aperlite/lib/bitbuffer"

// EncodePreamble writes the optional-component presence bitmap that
// precedes a SEQUENCE's fixed fields (X.691 19.5): one bit per
// optional or DEFAULT component, in declaration order, no alignment.
// Building the bitmap is a natural fit for bitbuffer.Codec's streaming
// writer, since it is just a short run of single-bit writes collapsed
// into whole bytes; the result is handed back as an Encoding so it
// composes with the rest of a Sequence's field encodings via Append.
func EncodePreamble(present []bool) (Encoding, error) {
	w := bitbuffer.CreateWriter()
	for _, p := range present {
		v := uint64(0)
		if p {
			v = 1
		}
		if err := w.Write(1, v); err != nil {
			return Encoding{}, wrapf(ErrWrite, "preamble bit: %v", err)
		}
	}
	if len(present) == 0 {
		return Encoding{}, nil
	}
	return EncodingFromBytesPadding(w.Bytes(), (8-len(present)%8)%8), nil
}

// DecodePreamble reads back the bitmap written by EncodePreamble. n is
// the number of optional/DEFAULT components the caller's SEQUENCE
// layout declares.
func DecodePreamble(d *Decoder, n int) ([]bool, error) {
	out := make([]bool, n)
	for i := range out {
		b, err := d.Read(1)
		if err != nil {
			return nil, err
		}
		out[i] = b != 0
	}
	return out, nil
}

// EncodeExtensionBitmap writes the extension-addition presence bitmap
// for an extensible SEQUENCE or SET (X.691 19.6): a normally-small
// length giving the number of known extension additions, followed by
// one presence bit per addition. Like EncodePreamble, the bit run
// itself is assembled with bitbuffer.Codec.
func EncodeExtensionBitmap(present []bool) (Encoding, error) {
	if len(present) == 0 {
		// An extensible type with the extension bit set but zero known
		// extension additions is valid (19.6): a future version may add
		// some. EncodeNormallySmallLength's short form encodes (n-1)
		// and so cannot represent n=0; use its long-form escape (a
		// leading 1 bit) with a length determinant of 0 instead, which
		// DecodeNormallySmallLength already reads back as 0 with no
		// further change needed on the decode side.
		e := bitsEncoding(1, 1)
		zero, err := EncodeLength(0)
		if err != nil {
			return Encoding{}, err
		}
		if err := e.Append(zero); err != nil {
			return Encoding{}, err
		}
		return e, nil
	}
	e, err := EncodeNormallySmallLength(len(present))
	if err != nil {
		return Encoding{}, err
	}
	w := bitbuffer.CreateWriter()
	for _, p := range present {
		v := uint64(0)
		if p {
			v = 1
		}
		if err := w.Write(1, v); err != nil {
			return Encoding{}, wrapf(ErrWrite, "extension bitmap bit: %v", err)
		}
	}
	bits := EncodingFromBytesPadding(w.Bytes(), (8-len(present)%8)%8)
	if err := e.Append(bits); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeExtensionBitmap is the counterpart of EncodeExtensionBitmap.
func DecodeExtensionBitmap(d *Decoder) ([]bool, error) {
	n, err := DecodeNormallySmallLength(d)
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i := range out {
		b, err := d.Read(1)
		if err != nil {
			return nil, err
		}
		out[i] = b != 0
	}
	return out, nil
}
