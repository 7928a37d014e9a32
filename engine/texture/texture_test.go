package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func encode(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return &buf
}

func TestDecode_Formats(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 10})
	gray.SetGray(1, 0, color.Gray{Y: 200})

	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	opaque.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 255})
	opaque.SetNRGBA(1, 0, color.NRGBA{4, 5, 6, 255})

	alpha := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	alpha.SetNRGBA(0, 0, color.NRGBA{7, 8, 9, 128})

	tests := []struct {
		Name     string
		Img      image.Image
		Expected Pixels
	}{
		{"gray", gray, Pixels{Format: Red, Width: 2, Height: 1, Data: []byte{10, 200}}},
		{"opaque", opaque, Pixels{Format: RGB, Width: 2, Height: 1, Data: []byte{1, 2, 3, 4, 5, 6}}},
		{"alpha", alpha, Pixels{Format: RGBA, Width: 1, Height: 1, Data: []byte{7, 8, 9, 128}}},
	}

	for _, tc := range tests {
		px, err := Decode(encode(t, tc.Img))
		if err != nil {
			t.Errorf("%s: Decode: %v", tc.Name, err)
			continue
		}
		if diff := cmp.Diff(tc.Expected, *px); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tc.Name, diff)
		}
		if n := len(px.Data); n != px.Width*px.Height*px.Format.Channels() {
			t.Errorf("%s: len(Data) != w*h*channels (got %d)", tc.Name, n)
		}
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Error("Decode(garbage) returned nil error")
	}
}
