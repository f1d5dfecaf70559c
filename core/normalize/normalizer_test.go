package normalize

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/img2pdf/core"
)

func fill(img interface {
	image.Image
	Set(x, y int, c color.Color)
}, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func TestNormalize_Resize(t *testing.T) {
	tests := []struct {
		name         string
		max          int
		w, h         int
		wantW, wantH int
	}{
		{"landscape downsampled", 100, 400, 200, 100, 50},
		{"portrait downsampled", 100, 150, 300, 50, 100},
		{"within bounds", 500, 400, 200, 400, 200},
		{"exactly at bound", 400, 400, 200, 400, 200},
		{"resizing disabled", 0, 3000, 3000, 3000, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			n := New(core.Options{MaxDimension: tt.max, ColorMode: core.ColorRGB})

			out := n.Normalize(src)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}
}

func TestNormalize_FlattensTransparencyOnWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fill(src, color.NRGBA{R: 255, A: 0})

	out := New(core.DefaultOptions()).Normalize(src)
	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok, "got %T", out)

	r, g, b, a := nrgba.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestNormalize_OpaqueColorsKept(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fill(src, color.RGBA{R: 10, G: 120, B: 250, A: 255})

	out := New(core.DefaultOptions()).Normalize(src)
	c := color.NRGBAModel.Convert(out.At(0, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 10, G: 120, B: 250, A: 255}, c)
}

func TestNormalize_ColorModes(t *testing.T) {
	rgb := image.NewRGBA(image.Rect(0, 0, 3, 3))
	fill(rgb, color.RGBA{R: 255, A: 255})
	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	fill(gray, color.Gray{Y: 80})
	paletted := image.NewPaletted(image.Rect(0, 0, 3, 3), color.Palette{color.Black, color.White})

	tests := []struct {
		name     string
		mode     core.ColorMode
		src      image.Image
		wantGray bool
	}{
		{"as-is keeps gray", core.ColorAsIs, gray, true},
		{"as-is turns rgb into rgb", core.ColorAsIs, rgb, false},
		{"as-is expands paletted", core.ColorAsIs, paletted, false},
		{"rgb forces rgb on gray", core.ColorRGB, gray, false},
		{"gray forces gray", core.ColorGray, rgb, true},
		{"empty mode behaves as-is", "", gray, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(core.Options{ColorMode: tt.mode}).Normalize(tt.src)
			if tt.wantGray {
				assert.IsType(t, &image.Gray{}, out)
			} else {
				assert.IsType(t, &image.NRGBA{}, out)
			}
		})
	}
}

func TestNormalize_GrayValuesPreserved(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	fill(gray, color.Gray{Y: 80})

	out := New(core.DefaultOptions()).Normalize(gray).(*image.Gray)
	assert.Equal(t, uint8(80), out.GrayAt(1, 1).Y)
}

func TestNormalize_NonZeroOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 20, 15))
	out := New(core.Options{ColorMode: core.ColorGray}).Normalize(src)
	assert.Equal(t, image.Rect(0, 0, 10, 5), out.Bounds())
}
