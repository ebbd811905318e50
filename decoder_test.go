package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	type testRow struct {
		name  string
		input []byte
	}

	random := make([]byte, 4096)
	rng.Read(random)
	skewed := make([]byte, 2048)
	for i := range skewed {
		skewed[i] = byte(rng.ExpFloat64() * 4)
	}

	testData := [...]testRow{
		{name: "text", input: []byte("she sells sea shells by the sea shore")},
		{name: "zero-bytes", input: []byte{0, 1, 0, 0, 2, 0}},
		{name: "trailing-zero", input: []byte("abc\x00")},
		{name: "two-symbols", input: []byte("ab")},
		{name: "random", input: random},
		{name: "skewed", input: skewed},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			enc, err := Encode(row.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			defer enc.Destroy()

			decoded, err := Decode(enc.Bytes, enc.Bits, enc.Tree)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(row.input, decoded) {
				t.Errorf("wrong round trip:\n\texpect: %q\n\tactual: %q", row.input, decoded)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	enc, err := Encode(classicInput())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	defer enc.Destroy()

	// the input starts with f = "1100"; two bits end inside it
	if _, err := Decode(enc.Bytes, 2, enc.Tree); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	if _, err := Decode(enc.Bytes[:1], enc.Bits, enc.Tree); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	if _, err := Decode(enc.Bytes, enc.Bits, nil); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected ErrInvalidTree, got %v", err)
	}
	leaf := &Node{}
	if _, err := Decode(enc.Bytes, enc.Bits, leaf); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected ErrInvalidTree, got %v", err)
	}

	out, err := Decode(nil, 0, enc.Tree)
	if err != nil || len(out) != 0 {
		t.Errorf("Decode of zero bits: %q, %v", out, err)
	}
}

func TestDecode_WholeBytes(t *testing.T) {
	// "abcd" packs into exactly one byte, so decoding every bit of the
	// buffer is the same as decoding the recorded bit count.
	enc, err := Encode([]byte("abcd"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(enc.Bytes, uint64(len(enc.Bytes))*8, enc.Tree)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(decoded) != "abcd" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "abcd", decoded)
	}
}
