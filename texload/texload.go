// Package texload decodes on-disk images into raycaster.Texture
// values — the "Image decoding" external collaborator named in §1.
// Supports PNG/JPEG via the standard library and BMP via
// golang.org/x/image/bmp, plus nearest-neighbor resizing via
// golang.org/x/image/draw for callers that need power-of-two
// dimensions for diagonal-wall textures (§9 Open Question 2).
package texload

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/FSMargoo/RCEngine/raycaster"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// Decode reads an image from r and converts it to a Texture. The
// alpha-nonzero-means-opaque convention (§6) is preserved as decoded:
// callers must prepare source images with alpha=0 on cut-out regions.
func Decode(r io.Reader) (*raycaster.Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texload: decode: %w", err)
	}
	return fromImage(img), nil
}

// DecodeResized decodes and nearest-neighbor-resizes to w x h, useful
// for normalizing diagonal-wall textures to power-of-two dimensions.
func DecodeResized(r io.Reader, w, h int) (*raycaster.Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texload: decode: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return fromImage(dst), nil
}

func fromImage(img image.Image) *raycaster.Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]raycaster.Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			pix[y*w+x] = raycaster.Pixel{
				B: uint8(bl >> 8),
				G: uint8(g >> 8),
				R: uint8(r >> 8),
				A: uint8(a >> 8),
			}
		}
	}
	return raycaster.NewTexture(w, h, pix)
}
