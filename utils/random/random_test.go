package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := NumericCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q", r)
		}
	}
}

func TestNumericCode_InvalidLength(t *testing.T) {
	_, err := NumericCode(0)
	assert.Error(t, err)
}
