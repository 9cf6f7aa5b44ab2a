package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestFixed26_6(t *testing.T) {
	p := Point2FromFixed26_6(fixed.P(1, 2))
	v := Vector2FromFixed26_6(fixed.P(3, 4))

	assert.Equal(t, fixed.P(4, 6), FixedPoint26_6(p.Add(v)))
	assert.Equal(t, fixed.P(-2, -2), FixedPoint26_6(p.Sub(v)))
	assert.Equal(t, fixed.P(2, 2), FixedVector26_6(p.Add(v).SubPoint(p).Sub(Vector2FromFixed26_6(fixed.P(1, 2)))))

	two := fixed.I(2)
	assert.Equal(t, fixed.P(6, 8), FixedVector26_6(MulFixed26_6(v, two)))
	assert.Equal(t, v, DivFixed26_6(MulFixed26_6(v, two), two))
	assert.Equal(t, fixed.I(25), DotFixed26_6(v, v))

	// the generic Mul works on raw values
	assert.Equal(t, fixed.Point26_6{X: 192 * 128, Y: 256 * 128}, FixedVector26_6(v.Mul(two)))

	half := Vector2FromFixed26_6(fixed.Point26_6{X: 32, Y: 96})
	assert.Equal(t, fixed.Point26_6{X: 64, Y: 192}, FixedVector26_6(MulFixed26_6(half, two)))
}

func TestFixed52_12(t *testing.T) {
	p := Point2FromFixed52_12(fixed.Point52_12{X: fixed.Int52_12(1 << 12), Y: fixed.Int52_12(2 << 12)})
	v := Vector2FromFixed52_12(fixed.Point52_12{X: fixed.Int52_12(3 << 12), Y: fixed.Int52_12(4 << 12)})

	q := p.Add(v)
	assert.Equal(t, fixed.Point52_12{X: 4 << 12, Y: 6 << 12}, FixedPoint52_12(q))
	assert.Equal(t, v, q.SubPoint(p))

	two := fixed.Int52_12(2 << 12)
	assert.Equal(t, fixed.Point52_12{X: 6 << 12, Y: 8 << 12}, FixedVector52_12(MulFixed52_12(v, two)))
	assert.Equal(t, v, DivFixed52_12(MulFixed52_12(v, two), two))
	assert.Equal(t, fixed.Int52_12(25<<12), DotFixed52_12(v, v))
}
