package track

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Field is the occupancy field backed by a track image scaled to fit a
// window. White pixels are walls. The field is read-only after load and safe
// to sample concurrently.
type Field struct {
	img        *image.RGBA
	offX, offY int
	winW, winH int
}

// Load decodes the track image and scales it to fit winW x winH preserving
// aspect ratio, centered in the window.
func Load(path string, winW, winH int) (*Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode track %s: %w", path, err)
	}
	return FromImage(src, winW, winH)
}

// FromImage builds a field from an already decoded image.
func FromImage(src image.Image, winW, winH int) (*Field, error) {
	if winW <= 0 || winH <= 0 {
		return nil, fmt.Errorf("window %dx%d must be positive", winW, winH)
	}
	sb := src.Bounds()
	sw, sh := scaleToFit(sb.Dx(), sb.Dy(), winW, winH)

	dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)

	return &Field{
		img:  dst,
		offX: (winW - sw) / 2,
		offY: (winH - sh) / 2,
		winW: winW,
		winH: winH,
	}, nil
}

// scaleToFit keeps the image aspect ratio inside the window.
func scaleToFit(imgW, imgH, winW, winH int) (int, int) {
	imgRatio := float64(imgW) / float64(imgH)
	winRatio := float64(winW) / float64(winH)
	if imgRatio > winRatio {
		return winW, int(float64(winW) / imgRatio)
	}
	return int(float64(winH) * imgRatio), winH
}

// Blocked reports whether the window point (x, y) lands on a wall pixel.
// Points outside the window or off the track image are open, so rays that
// leave the field run out to max range.
func (f *Field) Blocked(x, y float64) bool {
	ix := int(x) - f.offX
	iy := int(y) - f.offY
	if ix < 0 || iy < 0 || ix >= f.img.Rect.Dx() || iy >= f.img.Rect.Dy() {
		return false
	}
	r, g, b, _ := f.img.At(ix, iy).RGBA()
	return r>>8 == 0xff && g>>8 == 0xff && b>>8 == 0xff
}

// Size returns the window dimensions the field was fitted to.
func (f *Field) Size() (int, int) {
	return f.winW, f.winH
}
