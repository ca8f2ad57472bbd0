// Package cmmn has the coordinate types shared by the pdb packages.
// Vectors, 3x3 matrices and affine transforms, plus the two flavours
// of coordinate we deal with, orthogonal (Å) and fractional.
package cmmn

import (
	"math"
)

// Does our data come from a file or http source ?
const (
	FileSrc byte = iota
	HTTPSrc
)

// Vec3 is a plain three component vector.
type Vec3 struct{ X, Y, Z float64 }

func (v Vec3) Add(o Vec3) Vec3       { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3       { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(f float64) Vec3  { return Vec3{v.X * f, v.Y * f, v.Z * f} }
func (v Vec3) Dot(o Vec3) float64    { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) LengthSq() float64     { return v.Dot(v) }
func (v Vec3) Length() float64       { return math.Sqrt(v.LengthSq()) }
func (v Vec3) At(i int) float64      { return [3]float64{v.X, v.Y, v.Z}[i] }
func (v Vec3) Array() [3]float64     { return [3]float64{v.X, v.Y, v.Z} }
func VecFromArray(a [3]float64) Vec3 { return Vec3{a[0], a[1], a[2]} }

// Cross returns the vector product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Approx is true if every component is within eps.
func (v Vec3) Approx(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}

// Position is an orthogonal coordinate in Å.
type Position Vec3

func (p Position) Add(o Position) Position   { return Position(Vec3(p).Add(Vec3(o))) }
func (p Position) Sub(o Position) Position   { return Position(Vec3(p).Sub(Vec3(o))) }
func (p Position) LengthSq() float64         { return Vec3(p).LengthSq() }
func (p Position) DistSq(o Position) float64 { return p.Sub(o).LengthSq() }
func (p Position) Dist(o Position) float64   { return math.Sqrt(p.DistSq(o)) }

// Fractional is a coordinate in units of the cell edges.
type Fractional Vec3

func (f Fractional) Add(o Fractional) Fractional { return Fractional(Vec3(f).Add(Vec3(o))) }
func (f Fractional) Sub(o Fractional) Fractional { return Fractional(Vec3(f).Sub(Vec3(o))) }

// WrapToUnit moves every component into [0,1). The value is changed
// in place and also returned.
func (f *Fractional) WrapToUnit() Fractional {
	f.X -= math.Floor(f.X)
	f.Y -= math.Floor(f.Y)
	f.Z -= math.Floor(f.Z)
	return *f
}

// MoveTowardZeroByOne shifts components above 0.5 down by one and
// components below -0.5 up by one. Changes f in place.
func (f *Fractional) MoveTowardZeroByOne() Fractional {
	f.X = towardZero(f.X)
	f.Y = towardZero(f.Y)
	f.Z = towardZero(f.Z)
	return *f
}

func towardZero(x float64) float64 {
	if x > 0.5 {
		return x - 1
	} else if x < -0.5 {
		return x + 1
	}
	return x
}
