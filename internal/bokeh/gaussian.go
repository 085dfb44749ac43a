package bokeh

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gaussian evaluates the normal density with standard deviation sigma at x.
func Gaussian(x, sigma float64) float64 {
	return math.Exp(-x*x/(2*sigma*sigma)) / (math.Sqrt(2*math.Pi) * sigma)
}

// GaussianKernel builds a discrete gaussian kernel of length 2*radius+1,
// normalised so the samples sum to 1.
func GaussianKernel(sigma float64, radius int) []float64 {
	kernel := make([]float64, 1+2*radius)
	for i := -radius; i <= radius; i++ {
		kernel[i+radius] = Gaussian(float64(i), sigma)
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}
