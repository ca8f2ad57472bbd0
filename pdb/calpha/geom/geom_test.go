package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/andrew-torda/pdbcell/pdb/calpha/geom"
	. "github.com/andrew-torda/pdbcell/pdb/cmmn"
)

var disttests = []struct {
	name string
	x1   Position
	x2   Position
	e    bool
}{
	{"3.8 ", Position{X: 3.80, Y: 0.00, Z: 0}, Position{X: 0, Y: 0, Z: 0}, false},
	{"onex", Position{X: 0.00, Y: 0.00, Z: 0}, Position{X: 1, Y: 0, Z: 0}, true},
	{"333 ", Position{X: 3.00, Y: 3.00, Z: 3}, Position{X: 1, Y: 0, Z: 0}, true},
	{"1.95", Position{X: 1.95, Y: 1.95, Z: 3}, Position{X: 0, Y: 0, Z: 0}, false},
	{"5.0 ", Position{X: 5.00, Y: 5.00, Z: 5}, Position{X: 1, Y: 0, Z: 0}, true},
	{"diag", Position{X: 3.00, Y: 3.00, Z: 3}, Position{X: 0, Y: 0, Z: 0}, true},
	{"2.5 ", Position{X: 2.50, Y: 0.00, Z: 0}, Position{X: 0, Y: 0, Z: 0}, true},
	{"2.7 ", Position{X: 2.70, Y: 0.00, Z: 0}, Position{X: 0, Y: 0, Z: 0}, false},
}

// permuteXyz rotates x, y znd z for tests whose answers should not change
// when we move the axes around.
func permuteXyz(x Position) Position {
	x.X, x.Y, x.Z = x.Y, x.Z, x.X
	return x
}

func TestCaDist(t *testing.T) {
	for _, test := range disttests {
		x1, x2 := test.x1, test.x2
		dist1, e1 := CaDist(x1, x2)
		dist2, e2 := CaDist(x2, x1)
		x1, x2 = permuteXyz(x1), permuteXyz(x2)
		dist3, e3 := CaDist(x1, x2)
		x1, x2 = permuteXyz(x1), permuteXyz(x2)
		dist4, e4 := CaDist(x1, x2)
		assert.InDelta(t, dist1, dist2, 1e-12, test.name)
		assert.InDelta(t, dist1, dist3, 1e-12, test.name)
		assert.InDelta(t, dist1, dist4, 1e-12, test.name)
		assert.Equal(t, e1, e2, test.name)
		assert.Equal(t, e1, e3, test.name)
		assert.Equal(t, e1, e4, test.name)
		if test.e {
			assert.Error(t, e1, test.name)
			assert.Equal(t, float64(Brokendist), dist1)
		} else {
			assert.NoError(t, e1, test.name)
			assert.InDelta(t, Dist(test.x1, test.x2), dist1, 1e-12)
		}
	}
	_, err := CaDist(Position{X: 2.5}, Position{})
	assert.ErrorIs(t, err, ErrTooSmall)
}

var angletests = []struct {
	x1, x2, x3 Position
	res        float64
}{
	{Position{X: +1, Y: 0, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 0.9999, Y: 0, Z: 0}, 0},
	{Position{X: -0, Y: 1, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 1.0000, Y: 0, Z: 0}, math.Pi / 2},
	{Position{X: -1, Y: 0, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 1.0000, Y: 0, Z: 0}, math.Pi},
	{Position{X: +0, Y: 1, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 0.1000, Y: 0, Z: 0}, math.Pi / 2},
	{Position{X: +0, Y: 1, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 9.9000, Y: 0, Z: 0}, math.Pi / 2},
	{Position{X: -1, Y: 0, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 1.0000, Y: 1, Z: 0}, math.Pi * 3 / 4},
	{Position{X: -1, Y: 0, Z: 0}, Position{X: 0, Y: 0, Z: 0}, Position{X: 9.9, Y: 9.9, Z: 0}, math.Pi * 3 / 4},
}

func TestAngle(t *testing.T) {
	for _, test := range angletests {
		x1, x2, x3 := test.x1, test.x2, test.x3
		for i := 0; i < 3; i++ {
			a, err := Angle(x1, x2, x3)
			if assert.NoError(t, err, "%v %v %v", x1, x2, x3) {
				assert.InDelta(t, test.res, a, 1e-5, "%v %v %v", x1, x2, x3)
			}
			x1, x2, x3 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3)
		}
	}
	_, err := Angle(Position{X: 1, Y: 0, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0})
	assert.ErrorIs(t, err, ErrBadAngle)
}

var dhdrltests = []struct {
	x1, x2, x3, x4 Position
	res            float64
}{
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 1, Z: 0}, 0},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 1, Z: 1e-5}, -math.Atan(1e-5)},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 1, Z: 1e-3}, -math.Atan(1e-3)},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: -1, Z: 0}, math.Pi},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 0, Z: 1}, -math.Pi / 2},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 0, Z: -1}, math.Pi / 2},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 1, Z: -1}, math.Pi / 4},
	{Position{X: 0, Y: 1, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: -1, Z: -1}, math.Pi * (3.0 / 4.0)},
}

func TestDihedral(t *testing.T) {
	for _, test := range dhdrltests {
		x1, x2, x3, x4 := test.x1, test.x2, test.x3, test.x4
		for i := 0; i < 3; i++ {
			a, err := Dihedral(x1, x2, x3, x4)
			assert.NoError(t, err)
			assert.InDelta(t, test.res, a, 1e-9, "%v %v %v %v", x1, x2, x3, x4)
			x1, x2, x3, x4 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3), permuteXyz(x4)
		}
		// reversing the order keeps the angle
		a, err := Dihedral(test.x4, test.x3, test.x2, test.x1)
		assert.NoError(t, err)
		assert.InDelta(t, math.Abs(test.res), math.Abs(a), 1e-9)
	}
	_, err := Dihedral(Position{X: 0, Y: 0, Z: 0}, Position{X: 1, Y: 0, Z: 0}, Position{X: 2, Y: 0, Z: 0}, Position{X: 3, Y: 1, Z: 0})
	assert.ErrorIs(t, err, ErrColinear)
}
