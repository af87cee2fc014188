package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeenSetMarkSeen(t *testing.T) {
	s := newSeenSet(10)

	assert.False(t, s.MarkSeen(1))
	assert.True(t, s.MarkSeen(1))
	assert.False(t, s.MarkSeen(2))
}

func TestSeenSetEvictsOldestHalf(t *testing.T) {
	s := newSeenSet(4)

	for id := int64(1); id <= 4; id++ {
		assert.False(t, s.MarkSeen(id))
	}

	// Fifth insert triggers eviction of ids 1 and 2.
	assert.False(t, s.MarkSeen(5))
	assert.False(t, s.MarkSeen(1))
	assert.True(t, s.MarkSeen(4))
	assert.True(t, s.MarkSeen(5))
}

func TestSeenSetDefaultCapacity(t *testing.T) {
	s := newSeenSet(0)
	assert.Equal(t, 4096, s.cap)
}
