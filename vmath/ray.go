package vmath

import "math"

// Ray is a half-line from Origin along Dir (Dir need not be unit length)
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// Plane is defined by a point on it and its normal
type Plane struct {
	Point  Vec3F
	Normal Vec3F
}

// GroundPlane returns the horizontal plane at height y
func GroundPlane(y float64) Plane {
	return Plane{Point: Vec3F{0, y, 0}, Normal: Up}
}

// IntersectRayPlane solves t = (planePoint - origin)·N / (dir·N)
// Returns false when |dir·N| < eps (parallel) or the hit lies behind the origin
func IntersectRayPlane(r Ray, p Plane, eps float64) (Vec3F, bool) {
	denom := V3FDot(r.Dir, p.Normal)
	if math.Abs(denom) < eps {
		return Vec3F{}, false
	}
	t := V3FDot(V3FSub(p.Point, r.Origin), p.Normal) / denom
	if t < 0 || !isFinite(t) {
		return Vec3F{}, false
	}
	return r.At(t), true
}
