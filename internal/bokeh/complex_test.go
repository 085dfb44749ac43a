package bokeh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentKernelsAreNormalised(t *testing.T) {
	for n, set := range ParamSets {
		t.Run(fmt.Sprintf("%d-component", n+1), func(t *testing.T) {
			kernels := ComponentKernels(set, 5.0, 5)

			require.Len(t, kernels, set.Components())
			for _, kernel := range kernels {
				require.Len(t, kernel, 11)
			}

			// After normalisation the weighted cross-term sum is the
			// post-convolution brightness of a unit pixel.
			assert.InDelta(t, 1.0, weightedCrossSum(set, kernels), 1e-9)
		})
	}
}

func TestCombinedKernelIsSymmetric(t *testing.T) {
	// The component envelopes and oscillations depend only on the squared
	// offset, so the combined projection must mirror around the centre.
	for _, radius := range []int{1, 5, 10} {
		combined := CombinedKernel(Kernel3ParamSet, float64(radius), radius)

		require.Len(t, combined, 1+2*radius)
		for i := 0; i < radius; i++ {
			assert.InDelta(t, combined[i], combined[len(combined)-1-i], 1e-12,
				"radius %d: sample %d", radius, i)
		}
	}
}

func TestParamSetAccessors(t *testing.T) {
	set := Kernel2ParamSet

	require.Equal(t, 2, set.Components())
	assert.Equal(t, 0.886528, set.A(0))
	assert.Equal(t, 5.268909, set.B(0))
	assert.Equal(t, 0.411259, set.RealWeight(0))
	assert.Equal(t, -0.548794, set.ImagWeight(0))
	assert.Equal(t, 1.960518, set.A(1))
	assert.Equal(t, 4.561110, set.ImagWeight(1))

	for n, set := range ParamSets {
		assert.Equal(t, n+1, set.Components(), "param set %d", n+1)
	}
}
