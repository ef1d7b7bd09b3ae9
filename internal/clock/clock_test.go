package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	c := NewManual(time.Second)
	assert.Equal(t, time.Second, c.Now())
	assert.Equal(t, 1500*time.Millisecond, c.Advance(500*time.Millisecond))
	c.Set(0)
	assert.Equal(t, time.Duration(0), c.Now())
}

func TestSystemIsMonotonic(t *testing.T) {
	c := NewSystem()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, a, time.Duration(0))
	assert.GreaterOrEqual(t, b, a)
}
