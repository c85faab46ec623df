package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	assert.Equal(t, 0.5, clip(0.5, 0, 1))
	assert.Equal(t, 0.0, clip(-0.1, 0, 1))
	assert.Equal(t, 1.0, clip(1.3, 0, 1))
	assert.Equal(t, 2.0, clip(2.4, 0, 2))
}

func TestImprove_ApproachesOneWithoutOvershoot(t *testing.T) {
	v := 0.5
	for i := 0; i < 200; i++ {
		next := improve(v, 0.05)
		assert.Greater(t, next, v)
		assert.LessOrEqual(t, next, 1.0)
		v = next
	}
	assert.InDelta(t, 1.0, v, 1e-2)
}

func TestImprove_AtOne_Fixed(t *testing.T) {
	assert.Equal(t, 1.0, improve(1.0, 0.05))
}

func TestDecay_NonIncreasing(t *testing.T) {
	v := 0.8
	for i := 0; i < 100; i++ {
		next := decay(v, 0.01)
		assert.LessOrEqual(t, next, v)
		assert.GreaterOrEqual(t, next, 0.0)
		v = next
	}
}

func TestDriver_DefaultsWhenAbsent(t *testing.T) {
	group := map[string]float64{"present": 0.4, "zero": 0.0}

	assert.Equal(t, 0.4, driver(group, "present", 0.9))
	assert.Equal(t, 0.0, driver(group, "zero", 0.9)) // explicit zero is not "absent"
	assert.Equal(t, 0.9, driver(group, "missing", 0.9))
	assert.Equal(t, 0.9, driver(nil, "anything", 0.9))
}

func TestGroupMean(t *testing.T) {
	assert.InDelta(t, 0.5, groupMean(map[string]float64{"a": 0.4, "b": 0.6}), 1e-12)
	assert.Equal(t, 0.0, groupMean(nil))
	assert.Equal(t, 0.0, groupMean(map[string]float64{}))
}
