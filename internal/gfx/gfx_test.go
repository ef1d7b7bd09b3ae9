package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsEdgesInclusive(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	cases := []struct {
		x, y int32
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9, 20, false},
		{111, 70, false},
		{60, 71, false},
		{60, 19, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, r.Contains(c.x, c.y), "(%d,%d)", c.x, c.y)
	}
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, NewRect(0, 0, 10, 0).Empty())
	assert.False(t, NewRect(0, 0, 1, 1).Empty())
}
