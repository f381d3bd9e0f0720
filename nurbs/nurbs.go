// Package nurbs evaluates NURB splines over open uniform knot vectors.
// Splines are used by the engine for camera tracks and animation paths.
package nurbs

import (
	"errors"

	glm "github.com/go-gl/mathgl/mgl64"
)

// Order is the order of the spline polynomial, one above its degree.
type Order int

// Supported spline orders.
const (
	Linear    Order = 2
	Quadratic Order = 3
	Cubic     Order = 4
	Quartic   Order = 5
)

// ErrEvalLimit is returned when a spline is evaluated at or past its limit.
var ErrEvalLimit = errors.New("nurbs: evaluation past the spline limit")

// NewSpline creates a spline of the given order from the control points
// and generates its knot vector. At least `order` control points are needed.
func NewSpline(order Order, controlPoints []glm.Vec3) (*Spline, error) {
	if len(controlPoints) < int(order) {
		return nil, errors.New("nurbs: fewer control points than the spline order")
	}
	spline := &Spline{
		order:         order,
		controlPoints: controlPoints,
	}
	spline.generateKnots()
	return spline, nil
}

// Spline is a non-uniform rational basis spline over 3D control points.
type Spline struct {
	order         Order
	controlPoints []glm.Vec3
	knots         []float64
}

// EvalLimit returns the exclusive upper bound for evaluation.
// The spline cannot be evaluated at any value equal to or greater than it.
func (s *Spline) EvalLimit() float64 {
	return s.knots[len(s.knots)-1]
}

// EvaluateAt evaluates the spline at u, which must be below EvalLimit.
func (s *Spline) EvaluateAt(u float64) (glm.Vec3, error) {
	if u >= s.EvalLimit() {
		return glm.Vec3{}, ErrEvalLimit
	}

	var result glm.Vec3
	startIdx := int(u)
	order := int(s.order)
	for idx := startIdx; idx < startIdx+order; idx++ {
		contrib := s.coxDeBoor(idx, order, u)
		result = result.Add(s.controlPoints[idx].Mul(contrib))
	}
	return result, nil
}

// coxDeBoor returns the contribution of the control point at idx for the
// given order and evaluation value, by the Cox-de Boor recursion formula.
func (s *Spline) coxDeBoor(idx, order int, u float64) float64 {
	if order == 1 {
		if s.knots[idx] <= u && u <= s.knots[idx+1] {
			return 1.0
		}
		return 0.0
	}

	var equation1, equation2 float64
	if divident := s.knots[idx+order-1] - s.knots[idx]; divident > 0 {
		equation1 = (u - s.knots[idx]) / divident * s.coxDeBoor(idx, order-1, u)
	}
	if divident := s.knots[idx+order] - s.knots[idx+1]; divident > 0 {
		equation2 = (s.knots[idx+order] - u) / divident * s.coxDeBoor(idx+1, order-1, u)
	}
	return equation1 + equation2
}

// generateKnots produces an open uniform knot vector: the knot value is
// repeated `order` times on both ends and increases monotonically between.
func (s *Spline) generateKnots() {
	order := int(s.order)
	s.knots = make([]float64, 0, len(s.controlPoints)+order)

	val := 0.0
	const step = 1.0
	for i := 0; i < order; i++ {
		s.knots = append(s.knots, val)
	}
	val += step
	for i := 0; i < len(s.controlPoints)-order; i++ {
		s.knots = append(s.knots, val)
		val += step
	}
	for i := 0; i < order; i++ {
		s.knots = append(s.knots, val)
	}
}
