package bokeh

import "math"

// componentKernel builds one unnormalised complex gaussian component of
// length 2*radius+1. a scales the gaussian envelope and b the oscillation
// frequency; both act on the squared sample position scaled by r/radius.
func componentKernel(r float64, radius int, a, b float64) []complex128 {
	kernel := make([]complex128, 1+2*radius)
	for i := -radius; i <= radius; i++ {
		ax := float64(i) * r / float64(radius)
		ax2 := ax * ax
		envelope := math.Exp(-a * ax2)
		kernel[i+radius] = complex(envelope*math.Cos(b*ax2), envelope*math.Sin(b*ax2))
	}
	return kernel
}

// ComponentKernels builds every complex gaussian component of the set and
// jointly normalises them so the weighted sum of all pairwise products is 1,
// i.e. a pixel keeps its brightness after the horizontal and vertical passes.
func ComponentKernels(set ParamSet, r float64, radius int) [][]complex128 {
	kernels := make([][]complex128, set.Components())
	for n := range kernels {
		kernels[n] = componentKernel(r, radius, set.A(n), set.B(n))
	}

	norm := math.Sqrt(weightedCrossSum(set, kernels))
	for _, kernel := range kernels {
		for i := range kernel {
			kernel[i] /= complex(norm, 0)
		}
	}
	return kernels
}

// weightedCrossSum accumulates the weighted products of every sample pair
// within each component kernel. This is the quantity the normalisation
// drives to 1.
func weightedCrossSum(set ParamSet, kernels [][]complex128) float64 {
	var sum float64
	for n, kernel := range kernels {
		for _, i := range kernel {
			for _, j := range kernel {
				sum += set.RealWeight(n)*(real(i)*real(j)-imag(i)*imag(j)) +
					set.ImagWeight(n)*(real(i)*imag(j)+imag(i)*real(j))
			}
		}
	}
	return sum
}

// CombinedKernel projects the normalised component kernels back onto a real
// 1-D kernel by applying the per-component mixing weights. This is the shape
// the kernel dump files carry.
func CombinedKernel(set ParamSet, r float64, radius int) []float64 {
	kernels := ComponentKernels(set, r, radius)
	combined := make([]float64, 1+2*radius)
	for n, kernel := range kernels {
		for m, c := range kernel {
			combined[m] += set.RealWeight(n)*real(c) + set.ImagWeight(n)*imag(c)
		}
	}
	return combined
}
