package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCompare(t *testing.T) {

	h, err := NewBcrypt(4)
	assert.NoError(t, err)

	hashed, err := h.Hash("p1")
	assert.NoError(t, err)
	assert.NotEqual(t, "p1", hashed, "Stored value must never equal the plaintext")

	assert.NoError(t, h.Compare("p1", hashed))
	assert.Error(t, h.Compare("wrong", hashed))
}

func TestDefaultCost(t *testing.T) {

	_, err := NewBcrypt(0)
	assert.NoError(t, err, "Zero cost selects the default work factor")
}

func TestCostOutOfRange(t *testing.T) {

	_, err := NewBcrypt(99)
	assert.Error(t, err)

	_, err = NewBcrypt(-1)
	assert.Error(t, err)
}
