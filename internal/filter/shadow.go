package filter

import (
	"image"

	"github.com/gogpu/picasso/palette"
)

// Shadow returns the shadow cast by layer: its alpha channel blurred with
// a Gaussian of standard deviation sigma and tinted with c, as a
// premultiplied image the size of layer. Pixels outside layer count as
// transparent, so any sigma is accepted without the kernel outgrowing
// the layer. Shadow returns nil when layer is empty or c is transparent.
func Shadow(layer *image.RGBA, sigma float64, c palette.Color) *image.RGBA {
	b := layer.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || c.IsTransparent() {
		return nil
	}

	alpha := extractAlpha(layer)
	if sigma > 0 {
		// Taps further than the widest side never land on a pixel.
		alpha = blurAlpha(alpha, w, h, CachedGaussianKernel(sigma, max(w, h)))
	}
	return colorize(alpha, b, c)
}

// extractAlpha copies the alpha channel of img into a [0, 1] buffer.
func extractAlpha(img *image.RGBA) []float32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	alpha := make([]float32, w*h)
	for y := range h {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range w {
			alpha[y*w+x] = float32(row[x*4+3]) / 255
		}
	}
	return alpha
}

// blurAlpha applies a separable convolution with zero padding.
func blurAlpha(src []float32, w, h int, kernel []float32) []float32 {
	half := len(kernel) / 2
	tmp := make([]float32, w*h)
	dst := make([]float32, w*h)

	for y := range h {
		row := src[y*w : (y+1)*w]
		for x := range w {
			var sum float32
			for k, kv := range kernel {
				if kx := x + k - half; kx >= 0 && kx < w {
					sum += row[kx] * kv
				}
			}
			tmp[y*w+x] = sum
		}
	}

	for y := range h {
		for x := range w {
			var sum float32
			for k, kv := range kernel {
				if ky := y + k - half; ky >= 0 && ky < h {
					sum += tmp[ky*w+x] * kv
				}
			}
			dst[y*w+x] = sum
		}
	}
	return dst
}

// colorize builds a premultiplied image of color c with the given
// per-pixel coverage.
func colorize(alpha []float32, b image.Rectangle, c palette.Color) *image.RGBA {
	out := image.NewRGBA(b)
	w := b.Dx()
	base := float32(c.A) / 255
	for i, a := range alpha {
		a *= base
		if a <= 0 {
			continue
		}
		a = min(a, 1)
		off := out.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
		out.Pix[off+0] = clampUint8(float32(c.R) * a)
		out.Pix[off+1] = clampUint8(float32(c.G) * a)
		out.Pix[off+2] = clampUint8(float32(c.B) * a)
		out.Pix[off+3] = clampUint8(255 * a)
	}
	return out
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
