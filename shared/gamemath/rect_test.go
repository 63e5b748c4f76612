package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlapAndTouch(t *testing.T) {
	a := RectFromSize(0, 0, 10, 10)

	tests := []struct {
		name     string
		b        Rect
		overlaps bool
		touches  bool
	}{
		{"same box", RectFromSize(0, 0, 10, 10), true, true},
		{"shared right edge", RectFromSize(10, 0, 10, 10), false, true},
		{"resting on top", RectFromSize(0, 10, 10, 10), false, true},
		{"corner only", RectFromSize(10, 10, 10, 10), false, true},
		{"gap", RectFromSize(10.5, 0, 10, 10), false, false},
		{"partial", RectFromSize(9, 9, 10, 10), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, a.Overlaps(tt.b))
			assert.Equal(t, tt.touches, a.Touches(tt.b))
		})
	}
}

func TestRectEdgesRoundTrip(t *testing.T) {
	r := RectFromEdges(-4, 2, 6, 12)
	assert.Equal(t, 1.0, r.X)
	assert.Equal(t, 7.0, r.Y)
	assert.Equal(t, -4.0, r.Left())
	assert.Equal(t, 6.0, r.Right())
	assert.Equal(t, 2.0, r.Bottom())
	assert.Equal(t, 12.0, r.Top())

	u := r.Union(RectFromEdges(0, -10, 1, 0))
	assert.Equal(t, RectFromEdges(-4, -10, 6, 12), u)
}

func TestClampToward(t *testing.T) {
	assert.Equal(t, 5.0, ClampToward(7, 5))
	assert.Equal(t, 0.0, ClampToward(-1, 5))
	assert.Equal(t, -5.0, ClampToward(-9, -5))
	assert.Equal(t, 0.0, ClampToward(2, -5))
	assert.Equal(t, 0.0, ClampToward(3, 0))
	assert.True(t, SameSign(2, 3))
	assert.False(t, SameSign(0, 3))
	assert.False(t, SameSign(-2, 3))
}
