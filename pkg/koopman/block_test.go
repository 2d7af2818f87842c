package koopman

import (
	"errors"
	"testing"
)

func TestSum8Block3Golden(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		seed byte
		want uint8
	}{
		// Short input: only the byte-wise tail pass runs.
		{"tail only", []byte{0x01, 0x02, 0x03, 0x04}, 0, 174},
		// One full 24-bit block plus a three-byte tail.
		{"block and tail", []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, 0, 101},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sum8Block3(tc.data, tc.seed, Modulus8)
			if err != nil {
				t.Fatalf("Sum8Block3 failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Sum8Block3 = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSum8Block3AnyLength(t *testing.T) {
	// The tail pass makes every non-empty length valid.
	data := []byte("block variant tolerates any tail length")
	for n := 1; n <= len(data); n++ {
		if _, err := Sum8Block3(data[:n], DefaultSeed, Modulus8); err != nil {
			t.Errorf("length %d rejected: %v", n, err)
		}
	}
}

func TestSum16Block2Golden(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		seed byte
		want uint16
	}{
		{"two blocks", []byte{0x12, 0x34, 0x56, 0x78}, 0, 19558},
		{"seed block only", []byte{0x12, 0x34}, 0xEE, 49284},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sum16Block2(tc.data, tc.seed, Modulus16)
			if err != nil {
				t.Fatalf("Sum16Block2 failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Sum16Block2 = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSum32Block4Golden(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		seed byte
		want uint32
	}{
		{"one block", []byte{0x12, 0x34, 0x56, 0x78}, 0, 1527099480},
		{"one block seeded", []byte{0x12, 0x34, 0x56, 0x78}, 0xEE, 3976573036},
		{"two blocks", []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}, 0, 3435973756},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sum32Block4(tc.data, tc.seed, Modulus32)
			if err != nil {
				t.Fatalf("Sum32Block4 failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Sum32Block4 = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBlockAlignment(t *testing.T) {
	testCases := []struct {
		name string
		run  func() error
		want error
	}{
		{"Sum8Block3 empty", func() error { _, err := Sum8Block3(nil, 0, Modulus8); return err }, ErrEmptyData},
		{"Sum8Block3 bad modulus", func() error { _, err := Sum8Block3([]byte{1}, 0, 16); return err }, ErrBadModulus},
		{"Sum16Block2 empty", func() error { _, err := Sum16Block2(nil, 0, Modulus16); return err }, ErrShortData},
		{"Sum16Block2 one byte", func() error { _, err := Sum16Block2([]byte{1}, 0, Modulus16); return err }, ErrShortData},
		{"Sum16Block2 odd length", func() error { _, err := Sum16Block2([]byte{1, 2, 3}, 0, Modulus16); return err }, ErrUnalignedData},
		{"Sum32Block4 empty", func() error { _, err := Sum32Block4(nil, 0, Modulus32); return err }, ErrShortData},
		{"Sum32Block4 three bytes", func() error { _, err := Sum32Block4([]byte{1, 2, 3}, 0, Modulus32); return err }, ErrShortData},
		{"Sum32Block4 six bytes", func() error { _, err := Sum32Block4([]byte{1, 2, 3, 4, 5, 6}, 0, Modulus32); return err }, ErrUnalignedData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBlockMinimumLengths(t *testing.T) {
	if _, err := Sum8Block3([]byte{0xFF}, DefaultSeed, Modulus8); err != nil {
		t.Errorf("Sum8Block3 rejected a one-byte message: %v", err)
	}
	if _, err := Sum16Block2([]byte{0xFF, 0x00}, DefaultSeed, Modulus16); err != nil {
		t.Errorf("Sum16Block2 rejected a two-byte message: %v", err)
	}
	if _, err := Sum32Block4([]byte{0xFF, 0x00, 0x01, 0x02}, DefaultSeed, Modulus32); err != nil {
		t.Errorf("Sum32Block4 rejected a four-byte message: %v", err)
	}
}

func TestBlockSingleBitDetection(t *testing.T) {
	// Exhaustive single-bit flips over one aligned message per block
	// variant.
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}

	original, err := Sum32Block4(data, DefaultSeed, Modulus32)
	if err != nil {
		t.Fatalf("Sum32Block4 failed: %v", err)
	}
	for i := range data {
		for bit := 0; bit < 8; bit++ {
			corrupted := append([]byte(nil), data...)
			corrupted[i] ^= 1 << bit
			sum, err := Sum32Block4(corrupted, DefaultSeed, Modulus32)
			if err != nil {
				t.Fatalf("Sum32Block4 failed: %v", err)
			}
			if sum == original {
				t.Errorf("missed single bit flip at byte %d bit %d", i, bit)
			}
		}
	}

	original16, err := Sum16Block2(data, DefaultSeed, Modulus16)
	if err != nil {
		t.Fatalf("Sum16Block2 failed: %v", err)
	}
	for i := range data {
		for bit := 0; bit < 8; bit++ {
			corrupted := append([]byte(nil), data...)
			corrupted[i] ^= 1 << bit
			sum, err := Sum16Block2(corrupted, DefaultSeed, Modulus16)
			if err != nil {
				t.Fatalf("Sum16Block2 failed: %v", err)
			}
			if sum == original16 {
				t.Errorf("missed single bit flip at byte %d bit %d", i, bit)
			}
		}
	}
}

func TestBlockSeedAffectsResult(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30, 0x40}

	a, err := Sum32Block4(data, 0, Modulus32)
	if err != nil {
		t.Fatalf("Sum32Block4 failed: %v", err)
	}
	b, err := Sum32Block4(data, DefaultSeed, Modulus32)
	if err != nil {
		t.Fatalf("Sum32Block4 failed: %v", err)
	}
	if a == b {
		t.Error("different seeds produced the same checksum")
	}
}
