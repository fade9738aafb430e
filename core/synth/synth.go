// Package synth generates the synthetic series behind every chart: uniform
// draws, Gaussian random walks, 3D point clouds and parametric curves.
// Values are mock data by construction; nothing here reads from a plant.
package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// CloudPoint is a single marker in a 3D scatter cloud. Size is a marker
// radius in display units, Color a scalar in [0,1) mapped by the chart's
// gradient.
type CloudPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Size  float64 `json:"size"`
	Color float64 `json:"color"`
}

// CirclePoint is a single marker on a parametric 2D curve.
type CirclePoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Generator draws reproducible synthetic series from a single seeded
// stream. Two generators built with the same seed produce identical
// output call for call. A Generator is not safe for concurrent use;
// callers own one per goroutine.
type Generator struct {
	src *rand.PCG
}

// New creates a Generator. Seed 0 derives the seed from the wall clock,
// matching the unseeded paths of the original dashboards.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{src: rand.NewPCG(uint64(seed), uint64(seed)>>1)}
}

// Uniform returns n independent draws in [lo, hi).
func (g *Generator) Uniform(n int, lo, hi float64) []float64 {
	u := distuv.Uniform{Min: lo, Max: hi, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = u.Rand()
	}
	return out
}

// RandomWalk returns the running cumulative sum of n independent N(0,
// sigma) steps, shifted by offset. The first element is the first step
// plus offset, so consecutive differences recover the raw steps.
func (g *Generator) RandomWalk(n int, sigma, offset float64) []float64 {
	d := distuv.Normal{Mu: 0, Sigma: sigma, Src: g.src}
	out := make([]float64, n)
	sum := 0.0
	for i := range out {
		sum += d.Rand()
		out[i] = sum + offset
	}
	return out
}

// NormalCloud returns n points with coordinates drawn from N(0,1) on
// each axis, sizes in [2,8) and color scalars in [0,1).
func (g *Generator) NormalCloud(n int) []CloudPoint {
	d := distuv.Normal{Mu: 0, Sigma: 1, Src: g.src}
	out := make([]CloudPoint, n)
	for i := range out {
		out[i].X = d.Rand()
		out[i].Y = d.Rand()
		out[i].Z = d.Rand()
	}
	g.decorate(out)
	return out
}

// SphereCloud returns n points on a noisy unit shell: uniform angles,
// radius N(1,0.1). Sizes and colors as in NormalCloud.
func (g *Generator) SphereCloud(n int) []CloudPoint {
	theta := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: g.src}
	phi := distuv.Uniform{Min: 0, Max: math.Pi, Src: g.src}
	radius := distuv.Normal{Mu: 1, Sigma: 0.1, Src: g.src}
	out := make([]CloudPoint, n)
	for i := range out {
		th, ph, r := theta.Rand(), phi.Rand(), radius.Rand()
		out[i].X = r * math.Sin(ph) * math.Cos(th)
		out[i].Y = r * math.Sin(ph) * math.Sin(th)
		out[i].Z = r * math.Cos(ph)
	}
	g.decorate(out)
	return out
}

func (g *Generator) decorate(pts []CloudPoint) {
	size := distuv.Uniform{Min: 2, Max: 8, Src: g.src}
	color := distuv.Uniform{Min: 0, Max: 1, Src: g.src}
	for i := range pts {
		pts[i].Size = size.Rand()
		pts[i].Color = color.Rand()
	}
}

// Circle returns n points of the parametric unit circle over an even
// angle sweep of [0,2pi], rotated by phase. Marker size follows
// |sin(t+phase)|*10. The curve is closed form; no randomness.
func Circle(n int, phase float64) []CirclePoint {
	t := floats.Span(make([]float64, n), 0, 2*math.Pi)
	out := make([]CirclePoint, n)
	for i, v := range t {
		a := v + phase
		out[i].X = math.Cos(a)
		out[i].Y = math.Sin(a)
		out[i].Size = math.Abs(math.Sin(a)) * 10
	}
	return out
}
