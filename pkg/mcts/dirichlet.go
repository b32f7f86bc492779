package mcts

import (
	"math"
	"math/rand"
)

// sampleDirichlet draws one vector from Dir(alpha, alpha, ..., alpha) over n
// categories, via the standard construction of normalising n independent
// Gamma(alpha, 1) draws. There's no Dirichlet/Gamma sampler in the pack to
// ground this on; it's the textbook Marsaglia-Tsang method driven by the
// Run's seeded *rand.Rand, the same one used for random playouts.
func sampleDirichlet(rng *rand.Rand, alpha float64, n int) []float64 {
	out := make([]float64, n)
	var sum float64
	for i := range out {
		out[i] = sampleGamma(rng, alpha)
		sum += out[i]
	}
	if sum <= 0 {
		return uniformPriors(n)
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// sampleGamma draws from Gamma(shape, 1) via Marsaglia-Tsang (shape >= 1),
// boosted for shape < 1 via the standard Gamma(shape+1)*U^(1/shape) trick.
func sampleGamma(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		return sampleGamma(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// mixDirichlet mixes Dirichlet noise into priors as
// (1-epsilon)*P + epsilon*Dir(alpha), used only at the root.
func mixDirichlet(priors []float64, rng *rand.Rand, alpha, epsilon float64) []float64 {
	noise := sampleDirichlet(rng, alpha, len(priors))
	out := make([]float64, len(priors))
	for i := range out {
		out[i] = (1-epsilon)*priors[i] + epsilon*noise[i]
	}
	return out
}
