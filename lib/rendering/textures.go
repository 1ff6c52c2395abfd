package rendering

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/fosdem/glsteps/lib/metrics"
	"golang.org/x/image/draw"
)

var ErrPixelBufferSize = errors.New("pixel buffer size does not match width*height*4")

var textureMetrics = metrics.NewObjectMetrics("texture")

// Texture owns one 2D RGBA texture.
type Texture struct {
	d      Driver
	id     uint32
	width  int
	height int
}

func checkPixels(pixels []byte, width, height int) error {
	// compared without multiplying so huge sizes cannot wrap around
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 ||
		len(pixels)%(4*width) != 0 || len(pixels)/(4*width) != height {
		return fmt.Errorf("%w: got %d bytes for %dx%d", ErrPixelBufferSize, len(pixels), width, height)
	}
	return nil
}

// NewTexture uploads tightly packed 8-bit RGBA pixels. Nothing is allocated
// on the GPU when the pixel buffer has the wrong size.
func NewTexture(d Driver, rgbaPixels []byte, width, height int) (*Texture, error) {
	if err := checkPixels(rgbaPixels, width, height); err != nil {
		return nil, err
	}

	t := &Texture{d: d}
	t.id = d.GenTexture()
	textureMetrics.ObjectCreated()
	t.upload(rgbaPixels, width, height)
	return t, nil
}

// NewTextureFromImage converts img to RGBA and uploads it as is; flipping
// to match the GL texture origin is up to the caller.
func NewTextureFromImage(d Driver, img image.Image) (*Texture, error) {
	rgba := ToNRGBA(img)
	return NewTexture(d, rgba.Pix, rgba.Rect.Dx(), rgba.Rect.Dy())
}

// Update replaces the texture image, keeping the same GPU handle.
func (t *Texture) Update(rgbaPixels []byte, width, height int) error {
	if err := checkPixels(rgbaPixels, width, height); err != nil {
		return err
	}
	t.upload(rgbaPixels, width, height)
	return nil
}

func (t *Texture) upload(pixels []byte, width, height int) {
	t.width = width
	t.height = height
	t.d.BindTexture(t.id)
	t.d.TexImage2D(int32(width), int32(height), pixels)
	t.d.BindTexture(0)
	textureMetrics.Uploaded.Add(float64(len(pixels)))
}

// Bind attaches the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	t.d.ActiveTexture(unit)
	t.d.BindTexture(t.id)
}

func (t *Texture) Unbind(unit uint32) {
	t.d.ActiveTexture(unit)
	t.d.BindTexture(0)
}

func (t *Texture) ID() uint32 {
	return t.id
}

func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	t.d.DeleteTexture(t.id)
	textureMetrics.ObjectDeleted()
	t.id = 0
}

// ToNRGBA returns img as a tightly packed *image.NRGBA, converting only
// when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Stride == n.Rect.Dx()*4 && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, img, b.Min, draw.Src)
	return n
}
