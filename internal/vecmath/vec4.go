package vecmath

import "math"

// Vec4 is a homogeneous coordinate. W=1 encodes a point, W=0 a direction.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// V4FromV3 embeds v with the given w.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Point embeds v as a position (w=1).
func Point(v Vec3) Vec4 {
	return V4FromV3(v, 1)
}

// Direction embeds v as a direction (w=0), which translation leaves untouched.
func Direction(v Vec3) Vec4 {
	return V4FromV3(v, 0)
}

// Vec3 drops W.
func (a Vec4) Vec3() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

func (a Vec4) Neg() Vec4 {
	return Vec4{-a.X, -a.Y, -a.Z, -a.W}
}

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return a.Add(b.Neg())
}

func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

func (a Vec4) Scale(s float64) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

func (a Vec4) Div(b Vec4) Vec4 {
	return Vec4{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

func (a Vec4) DivScalar(s float64) Vec4 {
	return Vec4{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

func (a Vec4) Mag() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

func (a Vec4) Norm() Vec4 {
	return a.DivScalar(a.Mag())
}

func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (a Vec4) ApproxEqual(b Vec4, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) &&
		near(a.Z, b.Z, eps) && near(a.W, b.W, eps)
}
