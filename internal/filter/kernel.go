package filter

import (
	"math"

	"github.com/gogpu/picasso/internal/cache"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with standard
// deviation sigma.
//
// The kernel size is 2 * ceil(sigma * 3) + 1, which covers 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 || math.IsNaN(sigma) {
		return []float32{1.0}
	}

	half := KernelHalfSize(sigma)
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range size {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelHalfSize returns how far a blur with this sigma reaches, in pixels.
// The result saturates at math.MaxInt32.
func KernelHalfSize(sigma float64) int {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 0
	}
	if r := math.Ceil(sigma * 3); r < math.MaxInt32 {
		return int(r)
	}
	return math.MaxInt32
}

// BoundedGaussianKernel returns GaussianKernel(sigma) with its taps
// truncated to at most limit on each side. Weights stay normalized against
// the full kernel, so a zero-padded convolution over an image no wider than
// limit+1 gives the same result as the full kernel without allocating it.
func BoundedGaussianKernel(sigma float64, limit int) []float32 {
	if sigma <= 0 || math.IsNaN(sigma) || limit <= 0 {
		return []float32{1.0}
	}
	if KernelHalfSize(sigma) <= limit {
		return GaussianKernel(sigma)
	}

	size := limit*2 + 1
	kernel := make([]float32, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range size {
		x := float64(i - limit)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	// Mass of the dropped taps, limit < |x| <= ceil(3 sigma), by the
	// integral of the Gaussian between the tap edges.
	full := (math.Ceil(sigma*3) + 0.5) / sigma / math.Sqrt2
	kept := (float64(limit) + 0.5) / sigma / math.Sqrt2
	sum += sigma * math.Sqrt(2*math.Pi) * (math.Erf(full) - math.Erf(kept))

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

type kernelKey struct {
	sigma float64
	limit int
}

// kernels memoizes kernels by sigma and tap limit. Renders reuse a handful
// of blur levels.
var kernels = cache.New[kernelKey, []float32](64)

// CachedGaussianKernel returns BoundedGaussianKernel(sigma, limit), shared
// across calls. The returned slice must not be modified.
func CachedGaussianKernel(sigma float64, limit int) []float32 {
	if sigma <= 0 || math.IsNaN(sigma) || limit <= 0 {
		return []float32{1.0}
	}
	limit = min(limit, KernelHalfSize(sigma))
	return kernels.GetOrCreate(kernelKey{sigma, limit}, func() []float32 {
		return BoundedGaussianKernel(sigma, limit)
	})
}
