package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, int32(7), Abs(int32(7)))
	assert.Equal(t, int8(0), Abs(int8(0)))
	assert.Equal(t, Score(MateScore), Abs(-MateScore))
}
