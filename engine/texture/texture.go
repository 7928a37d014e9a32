// Package texture decodes images and uploads them as GL 2D textures.
package texture

import (
	"image"
	"image/color"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/xerrors"
)

// Format is the pixel layout of decoded data.
type Format uint8

const (
	Red Format = iota + 1
	RGB
	RGBA
)

// Channels returns the bytes per pixel.
func (f Format) Channels() int {
	switch f {
	case Red:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

// Pixels is tightly packed, top row first image data.
type Pixels struct {
	Format        Format
	Width, Height int
	Data          []byte
}

// Decode reads a PNG or JPEG image. Gray images become Red, images with
// any non-opaque pixel become RGBA, everything else RGB.
func Decode(r io.Reader) (*Pixels, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, xerrors.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := img.(*image.Gray); ok {
		data := make([]byte, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := g.Pix[(y-b.Min.Y)*g.Stride:]
			data = append(data, row[:w]...)
		}
		return &Pixels{Format: Red, Width: w, Height: h, Data: data}, nil
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x-b.Min.X, y-b.Min.Y, color.NRGBAModel.Convert(img.At(x, y)))
		}
	}

	if !rgba.Opaque() {
		return &Pixels{Format: RGBA, Width: w, Height: h, Data: rgba.Pix}, nil
	}
	data := make([]byte, 0, w*h*3)
	for i := 0; i < len(rgba.Pix); i += 4 {
		data = append(data, rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
	}
	return &Pixels{Format: RGB, Width: w, Height: h, Data: data}, nil
}

// Load decodes the file at path and uploads it with mipmaps. gamma selects
// sRGB internal formats for color textures.
func Load(path string, gamma bool) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, xerrors.Errorf("open texture: %w", err)
	}
	defer f.Close()

	px, err := Decode(f)
	if err != nil {
		return 0, xerrors.Errorf("%s: %w", path, err)
	}
	return Upload(px, gamma), nil
}

// Upload creates a GL texture from px. Needs a current GL context.
func Upload(px *Pixels, gamma bool) uint32 {
	var format uint32
	var internal int32
	switch px.Format {
	case Red:
		format, internal = gl.RED, gl.RED
	case RGB:
		format, internal = gl.RGB, gl.RGB
		if gamma {
			internal = gl.SRGB
		}
	default:
		format, internal = gl.RGBA, gl.RGBA
		if gamma {
			internal = gl.SRGB_ALPHA
		}
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	// rows of RGB/RED data are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(px.Width), int32(px.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(px.Data))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return id
}
