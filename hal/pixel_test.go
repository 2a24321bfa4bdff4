package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{255, 165, 0},
	}
	for _, tc := range cases {
		r, g, b := rgb888From565(rgb565(tc.r, tc.g, tc.b))
		if absDiff(r, tc.r) > 8 || absDiff(g, tc.g) > 4 || absDiff(b, tc.b) > 8 {
			t.Fatalf("round trip (%d,%d,%d) = (%d,%d,%d)", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestExpandRGB565(t *testing.T) {
	p := rgb565(255, 0, 0)
	src := []byte{byte(p), byte(p >> 8), 0, 0}
	dst := make([]byte, 8)
	expandRGB565(dst, src)
	want := []byte{255, 0, 0, 255, 0, 0, 0, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
