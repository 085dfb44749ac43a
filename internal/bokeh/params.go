// Package bokeh generates the 1-D convolution kernels whose shapes
// kernelplot visualises: plain gaussian kernels and the summed
// complex-gaussian component kernels used to approximate a disc-shaped
// (bokeh) blur.
package bokeh

// Parameters for the published 1..9 component kernels. Each component is a
// 4-tuple: gaussian scale a, frequency b, real mixing weight, imaginary
// mixing weight. Fitted by Mike Pound (github.com/mikepound/convolve).
var (
	kernel1Params = []float64{0.862325, 1.624835, 0.767583, 1.862321}
	kernel2Params = []float64{
		0.886528, 5.268909, 0.411259, -0.548794, 1.960518, 1.558213, 0.513282, 4.561110,
	}
	kernel3Params = []float64{
		2.176490, 5.043495, 1.621035, -2.105439, 1.019306, 9.027613, -0.280860, -0.162882, 2.815110,
		1.597273, -0.366471, 10.300301,
	}
	kernel4Params = []float64{
		4.338459, 1.553635, -5.767909, 46.164397, 3.839993, 4.693183, 9.795391, -15.227561, 2.791880,
		8.178137, -3.048324, 0.302959, 1.342190, 12.328289, 0.010001, 0.244650,
	}
	kernel5Params = []float64{
		4.892608, 1.685979, -22.356787, 85.912460, 4.711870, 4.998496, 35.918936, -28.875618, 4.052795,
		8.244168, -13.212253, -1.578428, 2.929212, 11.900859, 0.507991, 1.816328, 1.512961, 16.116382,
		0.138051, -0.010000,
	}
	kernel6Params = []float64{
		5.143778, 2.079813, -82.326596, 111.231024,
		5.612426, 6.153387, 113.878661, 58.004879,
		5.982921, 9.802895, 39.479083, -162.028887,
		6.505167, 11.059237, -71.286026, 95.027069,
		3.869579, 14.810520, 1.405746, -3.704914,
		2.201904, 19.032909, -0.152784, -0.107988,
	}
	kernel7Params = []float64{
		5.635755002716984, 2.0161846499938942, -127.67050821204298, 189.13366250400748,
		6.2265180958586, 6.010948636588568, 255.34251414243556, 37.55094949608352,
		6.189230711552051, 8.269383035533139, -132.2590521372958, -101.7059257653572,
		4.972166727344845, 12.050001393751478, -0.1843113559893084, 27.06823846423038,
		4.323578237784037, 16.00101043380645, 5.837168074459592, 0.3359847314948253,
		3.6920668221834534, 19.726797144782385, 0.010115759114852045, -1.091291088554394,
		2.2295702188720004, 23.527764286361837, -0.07655024461742256, 0.01001768577317681,
	}
	kernel8Params = []float64{
		6.6430131554059075, 2.33925731610851, -665.7557728544768, 445.83362839529286,
		8.948432332999396, 5.775418437190626, 1130.5906034230607, 15.626805026300797,
		6.513143649767612, 8.05507417830653, -419.50196449095665, -9.275778572724292,
		6.245927989258722, 12.863350894308521, -100.85574814870866, 79.1599400003683,
		6.713191682126933, 17.072272272191718, 36.65346659449611, 118.71908139892597,
		7.071814347005397, 18.719212513078034, 21.63902100281763, -77.52385953960055,
		4.932882961391405, 22.545463415981025, -1.9683109176118303, 3.0163201264848736,
		3.456372395841802, 26.088356168016503, 0.19835893874241894, 0.08089803872063023,
	}
	kernel9Params = []float64{
		7.393797857697906, 2.4737002456790207, -1796.6881230069646, 631.9043430000561,
		13.246479495224113, 6.216076882495199, 3005.0995149934884, 169.0878309991149,
		7.303628653874887, 7.783952969919921, -1058.5279460078423, 459.6898389991668,
		8.154742557454425, 13.430399706116823, -1720.108330007715, 810.6026949975844,
		8.381657431347698, 14.90360902110027, 1568.5705749924186, 285.01830799719926,
		6.866935986644192, 20.281841043506173, 90.55436499314388, -59.610040004419275,
		9.585395987559902, 21.80265398520623, -93.26089100639886, -111.18596800373774,
		5.4836869943565825, 25.89243600015612, 5.110650995956478, 0.009999997374460896,
		5.413819000655994, 28.96548499880915, 0.2499879943861626, -0.8591239990799346,
	}
)

// ParamSet holds the fitted parameters for one multi-component kernel and
// retrieves the per-component values.
type ParamSet struct {
	params []float64
}

// A returns the gaussian scale of component i.
func (s ParamSet) A(i int) float64 { return s.params[4*i] }

// B returns the oscillation frequency of component i.
func (s ParamSet) B(i int) float64 { return s.params[4*i+1] }

// RealWeight returns the real mixing weight of component i.
func (s ParamSet) RealWeight(i int) float64 { return s.params[4*i+2] }

// ImagWeight returns the imaginary mixing weight of component i.
func (s ParamSet) ImagWeight(i int) float64 { return s.params[4*i+3] }

// Components returns the number of gaussian components in the set.
func (s ParamSet) Components() int { return len(s.params) / 4 }

// Parameter sets for the 1..9 component kernels.
var (
	Kernel1ParamSet = ParamSet{params: kernel1Params}
	Kernel2ParamSet = ParamSet{params: kernel2Params}
	Kernel3ParamSet = ParamSet{params: kernel3Params}
	Kernel4ParamSet = ParamSet{params: kernel4Params}
	Kernel5ParamSet = ParamSet{params: kernel5Params}
	Kernel6ParamSet = ParamSet{params: kernel6Params}
	Kernel7ParamSet = ParamSet{params: kernel7Params}
	Kernel8ParamSet = ParamSet{params: kernel8Params}
	Kernel9ParamSet = ParamSet{params: kernel9Params}
)

// ParamSets lists the published parameter sets in component order, so
// ParamSets[n] has n+1 components.
var ParamSets = []ParamSet{
	Kernel1ParamSet,
	Kernel2ParamSet,
	Kernel3ParamSet,
	Kernel4ParamSet,
	Kernel5ParamSet,
	Kernel6ParamSet,
	Kernel7ParamSet,
	Kernel8ParamSet,
	Kernel9ParamSet,
}
